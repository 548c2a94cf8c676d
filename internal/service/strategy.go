package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	KindSmartComputer  = "SmartComputer"
	KindRandomComputer = "RandomComputer"
)

// MoveStrategy picks the next cell for a game. It must leave the game as it found it.
type MoveStrategy interface {
	SelectMove(game *entity.Game) (int, error)
}

type StrategyService interface {
	NewStrategy(kind, mark string) (MoveStrategy, error)
	Kinds() []string
}

type strategyService struct {
	intN func(n int) int
}

// NewStrategyService - intN is the random source shared by the strategies, nil means math/rand/v2.
func NewStrategyService(intN func(n int) int) StrategyService {
	if intN == nil {
		intN = rand.IntN
	}

	return &strategyService{
		intN: intN,
	}
}

func (that *strategyService) NewStrategy(kind, mark string) (MoveStrategy, error) {
	if !entity.IsValidMark(mark) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	switch kind {
	case KindSmartComputer:
		return NewMinimaxStrategy(mark, that.intN), nil
	case KindRandomComputer:
		return NewRandomStrategy(that.intN), nil
	default:
		return nil, fmt.Errorf("%w: %q, expected one of %s", apperror.ErrUnknownStrategyKind, kind, strings.Join(that.Kinds(), ", "))
	}
}

func (that *strategyService) Kinds() []string {
	return []string{KindSmartComputer, KindRandomComputer}
}

type randomStrategy struct {
	intN func(n int) int
}

func NewRandomStrategy(intN func(n int) int) MoveStrategy {
	return &randomStrategy{intN: intN}
}

func (that *randomStrategy) SelectMove(game *entity.Game) (int, error) {
	availableCells := game.AvailableMoves()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.intN(len(availableCells))], nil
}

type minimaxStrategy struct {
	mark string
	intN func(n int) int
}

type scoredMove struct {
	cell  int
	score int
}

func NewMinimaxStrategy(mark string, intN func(n int) int) MoveStrategy {
	return &minimaxStrategy{
		mark: mark,
		intN: intN,
	}
}

// SelectMove - any opening is as good as another, so an empty board gets a random cell.
func (that *minimaxStrategy) SelectMove(game *entity.Game) (int, error) {
	if game.HasWinner() {
		return 0, apperror.ErrGameFinished
	}

	availableCells := game.AvailableMoves()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if len(availableCells) == entity.BoardSize {
		return availableCells[that.intN(len(availableCells))], nil
	}

	best := that.minimax(game, that.mark)

	return best.cell, nil
}

// minimax - player is the mark about to move. Wins are worth more the earlier they come.
func (that *minimaxStrategy) minimax(game *entity.Game, player string) scoredMove {
	otherPlayer := entity.Opponent(player)

	if game.Winner == otherPlayer {
		score := game.CountEmpty() + 1
		if otherPlayer != that.mark {
			score = -score
		}

		return scoredMove{cell: -1, score: score}
	}

	if !game.HasEmptyCells() {
		return scoredMove{cell: -1, score: 0}
	}

	best := scoredMove{cell: -1, score: math.MinInt}
	if player != that.mark {
		best.score = math.MaxInt
	}

	for _, cell := range game.AvailableMoves() {
		simulated := that.simulate(game, cell, player)

		// strict comparison keeps the lowest cell on equal scores
		if player == that.mark {
			if simulated.score > best.score {
				best = simulated
			}
		} else if simulated.score < best.score {
			best = simulated
		}
	}

	return best
}

func (that *minimaxStrategy) simulate(game *entity.Game, cell int, player string) scoredMove {
	previousWinner := game.Winner

	game.ApplyMove(cell, player)
	defer game.UndoMove(cell, previousWinner)

	simulated := that.minimax(game, entity.Opponent(player))
	simulated.cell = cell

	return simulated
}
