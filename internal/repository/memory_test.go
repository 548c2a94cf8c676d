package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns copies", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)

		// Given: a stored game
		game := entity.NewGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps mutating its own pointer
		require.True(t, game.ApplyMove(0, entity.PlayerX))

		// Then: the stored game did not change
		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Board[0])

		// When: the returned copy is mutated
		require.True(t, stored.ApplyMove(1, entity.PlayerO))

		// Then: the stored game still did not change
		again, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame("123"), again)
	})

	t.Run("Missing game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)

		game, err := gameRepo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("Delete", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "123"))

		_, err := gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		require.ErrorIs(t, gameRepo.DeleteByID(ctx, "123"), apperror.ErrGameNotFound)
	})

	t.Run("Expired games are gone", func(t *testing.T) {
		// Given: a repository with a controllable clock
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		gameRepo := newMemoryGameRepository(time.Minute, func() time.Time { return now })
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		// Then: it is there before the ttl runs out
		_, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)

		// When: the ttl passes
		now = now.Add(time.Minute)

		// Then: the game is reported missing
		_, err = gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Update refreshes the ttl", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		gameRepo := newMemoryGameRepository(time.Minute, func() time.Time { return now })
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		now = now.Add(50 * time.Second)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		now = now.Add(50 * time.Second)
		_, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
	})

	t.Run("Concurrent access", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				game := entity.NewGame("concurrent")
				game.ApplyMove(i%entity.BoardSize, entity.PlayerX)
				assert.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

				_, err := gameRepo.GetByID(ctx, "concurrent")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})
}
