package simulation

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const KindHuman = "Human"

// HumanStrategy - asks for moves on a line based reader until it gets a free cell.
type HumanStrategy struct {
	mark    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanStrategy(mark string, in io.Reader, out io.Writer) *HumanStrategy {
	return &HumanStrategy{
		mark:    mark,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (that *HumanStrategy) SelectMove(game *entity.Game) (int, error) {
	available := game.AvailableMoves()

	for {
		fmt.Fprintf(that.out, "%s's turn. Input move (0-8): ", that.mark)

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return -1, fmt.Errorf("failed to read move: %w", err)
			}
			return -1, io.ErrUnexpectedEOF
		}

		cell, err := strconv.Atoi(strings.TrimSpace(that.scanner.Text()))
		if err == nil && slices.Contains(available, cell) {
			return cell, nil
		}

		fmt.Fprintln(that.out, "Invalid square. Try again.")
	}
}

// As - a strategy for mark reading from the same input.
func (that *HumanStrategy) As(mark string) *HumanStrategy {
	return &HumanStrategy{
		mark:    mark,
		scanner: that.scanner,
		out:     that.out,
	}
}
