package simulation

import (
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

// scripted plays the given cells in order.
type scripted struct {
	cells []int
}

func (that *scripted) SelectMove(_ *entity.Game) (int, error) {
	if len(that.cells) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	cell := that.cells[0]
	that.cells = that.cells[1:]

	return cell, nil
}

func seeded(seed uint64) func(int) int {
	return rand.New(rand.NewPCG(seed, seed+1)).IntN //nolint: gosec // deterministic source for tests
}

func minimaxFactory(mark string, seed uint64) Factory {
	intN := seeded(seed)
	return func() (service.MoveStrategy, error) {
		return service.NewMinimaxStrategy(mark, intN), nil
	}
}

func randomFactory(seed uint64) Factory {
	intN := seeded(seed)
	return func() (service.MoveStrategy, error) {
		return service.NewRandomStrategy(intN), nil
	}
}

func TestFormatBoard(t *testing.T) {
	game := entity.NewGame("")
	require.True(t, game.ApplyMove(0, entity.PlayerX))
	require.True(t, game.ApplyMove(1, entity.PlayerO))

	assert.Equal(t, "| X | O |   |\n|   |   |   |\n|   |   |   |\n", FormatBoard(game))
	assert.Equal(t, "| 0 | 1 | 2 |\n| 3 | 4 | 5 |\n| 6 | 7 | 8 |\n", FormatBoardNums())
}

func TestPlay(t *testing.T) {
	t.Run("X wins on the top row", func(t *testing.T) {
		var out strings.Builder

		outcome, err := Play(entity.NewGame(""), &scripted{cells: []int{0, 1, 2}}, &scripted{cells: []int{3, 4}}, &out)

		require.NoError(t, err)
		assert.Equal(t, OutcomeX, outcome)
		assert.True(t, strings.HasPrefix(out.String(), FormatBoardNums()))
		assert.Contains(t, out.String(), "O makes a move to square 4\n| X | X |   |\n| O | O |   |\n|   |   |   |\n")
		assert.Contains(t, out.String(), "X makes a move to square 2\n")
		assert.True(t, strings.HasSuffix(out.String(), "X wins!\n"))
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		var out strings.Builder
		x := &scripted{cells: []int{0, 2, 3, 7, 8}}
		o := &scripted{cells: []int{1, 4, 5, 6}}

		outcome, err := Play(entity.NewGame(""), x, o, &out)

		require.NoError(t, err)
		assert.Equal(t, OutcomeTie, outcome)
		assert.True(t, strings.HasSuffix(out.String(), "It's a tie!\n"))
	})

	t.Run("Occupied cell from a strategy fails the game", func(t *testing.T) {
		_, err := Play(entity.NewGame(""), &scripted{cells: []int{0}}, &scripted{cells: []int{0}}, nil)

		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Strategy errors are passed on", func(t *testing.T) {
		_, err := Play(entity.NewGame(""), &scripted{}, &scripted{}, nil)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		game := entity.NewGame("")
		for _, cell := range []int{0, 1, 2} {
			require.True(t, game.ApplyMove(cell, entity.PlayerO))
		}

		_, err := Play(game, &scripted{}, &scripted{}, io.Discard)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestRun(t *testing.T) {
	const games = 20

	t.Run("Minimax against itself always ties", func(t *testing.T) {
		tally, err := Run(games, minimaxFactory(entity.PlayerX, 1), minimaxFactory(entity.PlayerO, 2))

		require.NoError(t, err)
		assert.Equal(t, Tally{Tie: games}, tally)
	})

	t.Run("Minimax as X never loses to random", func(t *testing.T) {
		tally, err := Run(games, minimaxFactory(entity.PlayerX, 3), randomFactory(4))

		require.NoError(t, err)
		assert.Zero(t, tally.O)
		assert.Equal(t, games, tally.Total())
	})

	t.Run("Minimax as O never loses to random", func(t *testing.T) {
		tally, err := Run(games, randomFactory(5), minimaxFactory(entity.PlayerO, 6))

		require.NoError(t, err)
		assert.Zero(t, tally.X)
		assert.Equal(t, games, tally.Total())
	})

	t.Run("Random against random plays every game", func(t *testing.T) {
		tally, err := Run(games, randomFactory(7), randomFactory(8))

		require.NoError(t, err)
		assert.Equal(t, games, tally.Total())
	})

	t.Run("Factory errors stop the run", func(t *testing.T) {
		broken := func() (service.MoveStrategy, error) {
			return nil, apperror.ErrUnknownStrategyKind
		}

		_, err := Run(games, broken, randomFactory(9))

		assert.ErrorIs(t, err, apperror.ErrUnknownStrategyKind)
	})
}

func TestTally(t *testing.T) {
	var tally Tally
	for _, outcome := range []Outcome{OutcomeX, OutcomeTie, OutcomeO, OutcomeTie} {
		tally.Add(outcome)
	}

	assert.Equal(t, Tally{X: 1, O: 1, Tie: 2}, tally)
	assert.Equal(t, "X: 1, O: 1, tie: 2", tally.String())
}

func TestHumanStrategy(t *testing.T) {
	t.Run("Re-prompts until a free cell is entered", func(t *testing.T) {
		// Given: cell 0 is taken
		game := entity.NewGame("")
		require.True(t, game.ApplyMove(0, entity.PlayerO))

		var out strings.Builder
		human := NewHumanStrategy(entity.PlayerX, strings.NewReader("0\nnine\n9\n 4 \n"), &out)

		// When: the human types a taken cell, garbage, an out of range cell, then 4
		cell, err := human.SelectMove(game)

		// Then: 4 is returned after three retries
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, 4, strings.Count(out.String(), "X's turn. Input move (0-8): "))
		assert.Equal(t, 3, strings.Count(out.String(), "Invalid square. Try again.\n"))
	})

	t.Run("Closed input", func(t *testing.T) {
		human := NewHumanStrategy(entity.PlayerO, strings.NewReader("x\n"), io.Discard)

		_, err := human.SelectMove(entity.NewGame(""))

		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})

	t.Run("Plays a whole game from input", func(t *testing.T) {
		human := NewHumanStrategy(entity.PlayerX, strings.NewReader("0\n1\n2\n"), io.Discard)

		outcome, err := Play(entity.NewGame(""), human, &scripted{cells: []int{3, 4}}, nil)

		require.NoError(t, err)
		assert.Equal(t, OutcomeX, outcome)
	})
	t.Run("Two humans share one input", func(t *testing.T) {
		var out strings.Builder
		x := NewHumanStrategy(entity.PlayerX, strings.NewReader("0\n3\n1\n4\n2\n"), &out)

		outcome, err := Play(entity.NewGame(""), x, x.As(entity.PlayerO), nil)

		require.NoError(t, err)
		assert.Equal(t, OutcomeX, outcome)
		assert.Contains(t, out.String(), "O's turn. Input move (0-8): ")
	})
}
