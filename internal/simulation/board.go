package simulation

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const boardSide = 3

// FormatBoard - renders the board one row per line, e.g. "| X | O |   |".
func FormatBoard(game *entity.Game) string {
	return formatRows(func(cell int) string {
		return game.Board[cell]
	})
}

// FormatBoardNums - renders the cell indexes in the same layout as FormatBoard.
func FormatBoardNums() string {
	return formatRows(strconv.Itoa)
}

func formatRows(cellText func(cell int) string) string {
	var builder strings.Builder

	for row := 0; row < boardSide; row++ {
		cells := make([]string, 0, boardSide)
		for col := 0; col < boardSide; col++ {
			cells = append(cells, cellText(row*boardSide+col))
		}

		builder.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return builder.String()
}
