package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

type mockStrategyService struct {
	mock.Mock
}

func (that *mockStrategyService) NewStrategy(kind, mark string) (service.MoveStrategy, error) {
	args := that.Called(kind, mark)

	strategy, _ := args.Get(0).(service.MoveStrategy)

	return strategy, args.Error(1)
}

type mockMoveStrategy struct {
	mock.Mock
}

func (that *mockMoveStrategy) SelectMove(game *entity.Game) (int, error) {
	args := that.Called(game)
	return args.Int(0), args.Error(1)
}

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	return that.Called(ctx, game).Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	return that.Called(ctx, id).Error(0)
}
