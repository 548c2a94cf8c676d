package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type strategyService interface {
	NewStrategy(kind, mark string) (service.MoveStrategy, error)
}

// GameManager drives game sessions: it loads the game, asks a strategy or a human for a move and stores the result.
type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	strategies strategyService

	locks *gameLocks
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, strategies strategyService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		strategies: strategies,

		locks: newGameLocks(),
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", gameID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	if gameID == "" {
		return nil, apperror.ErrGameNotFound
	}

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// ResetGame - replaces whatever is stored under gameID with an empty board.
func (that *GameManager) ResetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	if gameID == "" {
		return nil, apperror.ErrGameNotFound
	}

	unlock := that.locks.lock(gameID)
	defer unlock()

	game := entity.NewGame(gameID)
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	that.logger.Debug("game reset", "gameID", gameID)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	if gameID == "" {
		return apperror.ErrGameNotFound
	}

	unlock := that.locks.lock(gameID)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// StrategyMove - lets the strategy of the given kind play mark on the game.
func (that *GameManager) StrategyMove(ctx context.Context, gameID, kind, mark string) (*entity.Game, error) {
	log := that.logger.With("method", "StrategyMove", "gameID", gameID)

	strategy, err := that.strategies.NewStrategy(kind, mark)
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.openGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	cell, err := strategy.SelectMove(game)
	if err != nil {
		return nil, fmt.Errorf("failed to select move: %w", err)
	}

	if !game.ApplyMove(cell, mark) {
		return nil, fmt.Errorf("%w: strategy %s chose cell %d", apperror.ErrInvalidMove, kind, cell)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("strategy move applied", "kind", kind, "mark", mark, "cell", cell, "winner", game.Winner)

	return game, nil
}

// HumanMove - applies a move supplied by a person. An illegal cell leaves the stored game as it was.
func (that *GameManager) HumanMove(ctx context.Context, gameID string, cell int, mark string) (*entity.Game, error) {
	log := that.logger.With("method", "HumanMove", "gameID", gameID)

	if !entity.IsValidMark(mark) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.openGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.ApplyMove(cell, mark) {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrInvalidMove, cell)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("human move applied", "mark", mark, "cell", cell, "winner", game.Winner)

	return game, nil
}

// PlayAgainstComputer - applies the human move and lets a SmartComputer answer with the other mark.
// A game that ends in this call is reported as it ended and a fresh board is stored in its place.
func (that *GameManager) PlayAgainstComputer(ctx context.Context, gameID string, cell int, mark string) (*entity.Game, error) {
	log := that.logger.With("method", "PlayAgainstComputer", "gameID", gameID)

	if !entity.IsValidMark(mark) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	computerMark := entity.Opponent(mark)
	computer, err := that.strategies.NewStrategy(service.KindSmartComputer, computerMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.openGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.ApplyMove(cell, mark) {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrInvalidMove, cell)
	}

	if !game.IsFinished() {
		computerCell, err := computer.SelectMove(game)
		if err != nil {
			return nil, fmt.Errorf("failed to select move: %w", err)
		}

		if !game.ApplyMove(computerCell, computerMark) {
			return nil, fmt.Errorf("%w: computer chose cell %d", apperror.ErrInvalidMove, computerCell)
		}

		log.Debug("computer answered", "mark", computerMark, "cell", computerCell)
	}

	stored := game
	if game.IsFinished() {
		log.Info("game finished, starting over", "winner", game.Winner)
		stored = entity.NewGame(gameID)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// openGame - loads the game or starts one under gameID. Caller holds the game lock.
func (that *GameManager) openGame(ctx context.Context, gameID string) (*entity.Game, error) {
	if gameID == "" {
		return nil, apperror.ErrGameNotFound
	}

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return entity.NewGame(gameID), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	return game, nil
}
