package simulation

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

// Factory builds the strategy for one side of a game.
type Factory func() (service.MoveStrategy, error)

type Tally struct {
	X   int `json:"X"`
	O   int `json:"O"`
	Tie int `json:"tie"`
}

func (that *Tally) Add(outcome Outcome) {
	switch outcome {
	case OutcomeX:
		that.X++
	case OutcomeO:
		that.O++
	case OutcomeTie:
		that.Tie++
	}
}

func (that Tally) Total() int {
	return that.X + that.O + that.Tie
}

func (that Tally) String() string {
	return fmt.Sprintf("X: %d, O: %d, tie: %d", that.X, that.O, that.Tie)
}

// Run - plays n fresh games silently and tallies the outcomes.
func Run(n int, newX, newO Factory) (Tally, error) {
	return RunWithOutput(n, newX, newO, nil)
}

// RunWithOutput - same as Run, every game is printed to out.
func RunWithOutput(n int, newX, newO Factory, out io.Writer) (Tally, error) {
	var tally Tally

	for i := 0; i < n; i++ {
		x, err := newX()
		if err != nil {
			return tally, fmt.Errorf("failed to build X strategy: %w", err)
		}

		o, err := newO()
		if err != nil {
			return tally, fmt.Errorf("failed to build O strategy: %w", err)
		}

		outcome, err := Play(entity.NewGame(""), x, o, out)
		if err != nil {
			return tally, fmt.Errorf("game %d: %w", i+1, err)
		}

		tally.Add(outcome)
	}

	return tally, nil
}
