package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// DefaultGameID is the session behind the id-less routes kept for older clients.
const DefaultGameID = "default"

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	StrategyMove(ctx context.Context, gameID, kind, mark string) (*entity.Game, error)
	HumanMove(ctx context.Context, gameID string, cell int, mark string) (*entity.Game, error)
	PlayAgainstComputer(ctx context.Context, gameID string, cell int, mark string) (*entity.Game, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandler struct {
	logger *slog.Logger
	game   gameUseCase
}

func newGameHandler(logger *slog.Logger, game gameUseCase) *gameHandler {
	return &gameHandler{
		logger: logger,
		game:   game,
	}
}

func (that *gameHandler) createGame(ctx echo.Context) error {
	game, err := that.game.CreateGame(ctx.Request().Context())
	if err != nil {
		return that.respondError(ctx, "createGame", err)
	}

	return ctx.JSON(http.StatusCreated, entity.NewGameReport(game))
}

func (that *gameHandler) getGame(ctx echo.Context) error {
	game, err := that.game.GetGame(ctx.Request().Context(), gameID(ctx))
	if err != nil {
		return that.respondError(ctx, "getGame", err)
	}

	return ctx.JSON(http.StatusOK, entity.NewGameReport(game))
}

func (that *gameHandler) deleteGame(ctx echo.Context) error {
	if err := that.game.DeleteGame(ctx.Request().Context(), gameID(ctx)); err != nil {
		return that.respondError(ctx, "deleteGame", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *gameHandler) resetGame(ctx echo.Context) error {
	game, err := that.game.ResetGame(ctx.Request().Context(), gameID(ctx))
	if err != nil {
		return that.respondError(ctx, "resetGame", err)
	}

	return ctx.JSON(http.StatusOK, entity.NewGameReport(game))
}

// resetDefault - older clients only expect "ok".
func (that *gameHandler) resetDefault(ctx echo.Context) error {
	if _, err := that.game.ResetGame(ctx.Request().Context(), DefaultGameID); err != nil {
		return that.respondError(ctx, "resetDefault", err)
	}

	return ctx.String(http.StatusOK, "ok")
}

func (that *gameHandler) nextMove(ctx echo.Context) error {
	game, err := that.game.StrategyMove(ctx.Request().Context(), gameID(ctx), ctx.QueryParam("kind"), ctx.QueryParam("letter"))
	if err != nil {
		return that.respondError(ctx, "nextMove", err)
	}

	return ctx.JSON(http.StatusOK, entity.NewGameReport(game))
}

func (that *gameHandler) humanMove(ctx echo.Context) error {
	cell, err := cellParam(ctx, "index")
	if err != nil {
		return that.respondError(ctx, "humanMove", err)
	}

	game, err := that.game.HumanMove(ctx.Request().Context(), gameID(ctx), cell, ctx.QueryParam("letter"))
	if err != nil {
		return that.respondError(ctx, "humanMove", err)
	}

	return ctx.JSON(http.StatusOK, entity.NewGameReport(game))
}

func (that *gameHandler) move(ctx echo.Context) error {
	cell, err := cellParam(ctx, "square")
	if err != nil {
		return that.respondError(ctx, "move", err)
	}

	game, err := that.game.PlayAgainstComputer(ctx.Request().Context(), gameID(ctx), cell, ctx.QueryParam("letter"))
	if err != nil {
		return that.respondError(ctx, "move", err)
	}

	return ctx.JSON(http.StatusOK, entity.NewGameReport(game))
}

func (that *gameHandler) respondError(ctx echo.Context, method string, err error) error {
	log := that.logger.With("method", method, "gameID", gameID(ctx))

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		return ctx.JSON(status, errorResponse{Error: http.StatusText(status)})
	}

	log.Info("request rejected", "status", status, "error", err)

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrUnknownStrategyKind):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNoAvailableMoves):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// gameID - routes without an :id act on the default session.
func gameID(ctx echo.Context) string {
	if id := ctx.Param("id"); id != "" {
		return id
	}

	return DefaultGameID
}

func cellParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)

	cell, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", apperror.ErrInvalidMove, name, raw)
	}

	return cell, nil
}
