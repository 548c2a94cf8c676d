package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = " "

	BoardSize = 9
	boardSide = 3
)

var diagonals = [2][3]int{
	{0, 4, 8},
	{2, 4, 6},
}

// Game is a single tic-tac-toe session. Cells are numbered 0..8 row-major, 4 is the center.
type Game struct {
	ID     string            `json:"id"`
	Board  [BoardSize]string `json:"board"`
	Winner string            `json:"winner"`
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	for i := range game.Board {
		game.Board[i] = EmptyCell
	}

	return game
}

// ApplyMove - puts mark into cell. It is the only way a cell gets written.
// Returns false without touching the board when the cell is not free or the mark is unknown.
func (that *Game) ApplyMove(cell int, mark string) bool {
	if !IsValidMark(mark) || cell < 0 || cell >= BoardSize {
		return false
	}

	if that.Board[cell] != EmptyCell {
		return false
	}

	that.Board[cell] = mark
	// the first line decides the game, only UndoMove clears it
	if that.Winner == "" && that.evaluateWinner(cell, mark) {
		that.Winner = mark
	}

	return true
}

// UndoMove - empties cell and puts the winner marker back to winner.
func (that *Game) UndoMove(cell int, winner string) {
	if cell < 0 || cell >= BoardSize {
		return
	}

	that.Board[cell] = EmptyCell
	that.Winner = winner
}

// evaluateWinner - checks only the lines passing through the last move.
// Only even cells (corners and center) lie on a diagonal.
func (that *Game) evaluateWinner(cell int, mark string) bool {
	row := cell / boardSide
	if that.lineOf(mark, row*boardSide, row*boardSide+1, row*boardSide+2) {
		return true
	}

	col := cell % boardSide
	if that.lineOf(mark, col, col+boardSide, col+2*boardSide) {
		return true
	}

	if cell%2 == 0 {
		for _, diagonal := range diagonals {
			if that.lineOf(mark, diagonal[0], diagonal[1], diagonal[2]) {
				return true
			}
		}
	}

	return false
}

func (that *Game) lineOf(mark string, a, b, c int) bool {
	return that.Board[a] == mark && that.Board[b] == mark && that.Board[c] == mark
}

func (that *Game) HasEmptyCells() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return true
		}
	}

	return false
}

func (that *Game) CountEmpty() int {
	count := 0
	for _, cell := range that.Board {
		if cell == EmptyCell {
			count++
		}
	}

	return count
}

// AvailableMoves - empty cells in ascending order.
func (that *Game) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that.Board {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that *Game) HasWinner() bool {
	return that.Winner == PlayerX || that.Winner == PlayerO
}

// IsTie - board is full and nobody completed a line.
func (that *Game) IsTie() bool {
	return !that.HasWinner() && !that.HasEmptyCells()
}

func (that *Game) IsFinished() bool {
	return that.HasWinner() || !that.HasEmptyCells()
}

func (that *Game) IsEmpty() bool {
	return that.CountEmpty() == BoardSize
}

// Clone - returns a copy that shares no state with the original.
func (that *Game) Clone() *Game {
	clone := *that
	return &clone
}

func IsValidMark(mark string) bool {
	return mark == PlayerX || mark == PlayerO
}

func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
