package entity

// GameReport is the wire shape of a game: one character per cell and a null winner while nobody has won.
type GameReport struct {
	ID     string            `json:"id,omitempty"`
	Board  [BoardSize]string `json:"board"`
	Winner *string           `json:"winner"`
	Tie    bool              `json:"tie"`
}

func NewGameReport(game *Game) *GameReport {
	report := &GameReport{
		ID:    game.ID,
		Board: game.Board,
		Tie:   game.IsTie(),
	}

	if game.HasWinner() {
		winner := game.Winner
		report.Winner = &winner
	}

	return report
}
