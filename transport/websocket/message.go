package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	actionGameNew       = "game:new"
	actionGameGet       = "game:get"
	actionGameReset     = "game:reset"
	actionGameNextMove  = "game:next-move"
	actionGameHumanMove = "game:human-move"
	actionGameMove      = "game:move"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string `json:"game_id,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Letter string `json:"letter,omitempty"`
	Cell   *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.GameReport `json:"game,omitempty"`
	Error string             `json:"error,omitempty"`
}
