package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: a storage is opened on the suite's redis
		redisStorage, err := NewRedisStorage(ctx, st.Storage.Options().Addr, "", 0)

		// Then: it connects and closes cleanly
		require.NoError(t, err)
		require.NoError(t, redisStorage.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// When: a storage is opened on a closed port
		redisStorage, err := NewRedisStorage(ctx, "127.0.0.1:1", "", 0)

		// Then: the ping error comes back
		require.Error(t, err)
		require.Nil(t, redisStorage)
	})
}
