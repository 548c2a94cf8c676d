package simulation

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

type Outcome string

const (
	OutcomeX   Outcome = entity.PlayerX
	OutcomeO   Outcome = entity.PlayerO
	OutcomeTie Outcome = "tie"
)

// Play - alternates x and o, X first, until someone wins or the board is full.
// When out is not nil every move is printed together with the board.
func Play(game *entity.Game, x, o service.MoveStrategy, out io.Writer) (Outcome, error) {
	if game.HasWinner() {
		return "", apperror.ErrGameFinished
	}

	printer := newPrinter(out)
	printer.print(FormatBoardNums())

	mark := entity.PlayerX
	for game.HasEmptyCells() {
		strategy := x
		if mark == entity.PlayerO {
			strategy = o
		}

		cell, err := strategy.SelectMove(game)
		if err != nil {
			return "", fmt.Errorf("%s could not select a move: %w", mark, err)
		}

		if !game.ApplyMove(cell, mark) {
			return "", fmt.Errorf("%s selected cell %d: %w", mark, cell, apperror.ErrInvalidMove)
		}

		printer.printf("%s makes a move to square %d\n", mark, cell)
		printer.print(FormatBoard(game) + "\n")

		if game.HasWinner() {
			printer.printf("%s wins!\n", mark)
			return Outcome(mark), nil
		}

		mark = entity.Opponent(mark)
	}

	printer.print("It's a tie!\n")

	return OutcomeTie, nil
}

// printer drops output when there is no writer.
type printer struct {
	out io.Writer
}

func newPrinter(out io.Writer) printer {
	return printer{out: out}
}

func (that printer) print(text string) {
	if that.out != nil {
		_, _ = io.WriteString(that.out, text)
	}
}

func (that printer) printf(format string, args ...any) {
	if that.out != nil {
		_, _ = fmt.Fprintf(that.out, format, args...)
	}
}
