package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var errCellRequired = errors.New("cell is required")

func (that *Server) handleNewGame(ctx context.Context, _ *RequestPayload) (*entity.Game, error) {
	return that.game.CreateGame(ctx)
}

func (that *Server) handleGetGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	return that.game.GetGame(ctx, payload.GameID)
}

func (that *Server) handleResetGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	return that.game.ResetGame(ctx, payload.GameID)
}

func (that *Server) handleNextMove(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	return that.game.StrategyMove(ctx, payload.GameID, payload.Kind, payload.Letter)
}

func (that *Server) handleHumanMove(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.Cell == nil {
		return nil, errCellRequired
	}

	return that.game.HumanMove(ctx, payload.GameID, *payload.Cell, payload.Letter)
}

func (that *Server) handleMove(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.Cell == nil {
		return nil, errCellRequired
	}

	return that.game.PlayAgainstComputer(ctx, payload.GameID, *payload.Cell, payload.Letter)
}
