package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-zone/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "quizzone:catalog:home:all"
	expectedValue := `{"categories":[]}`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(expectedValue)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, expectedValue, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(key).SetErr(redisErr)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Hour).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, "k", "v", time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("Several keys", func(t *testing.T) {
		mock.ExpectDel("a", "b").SetVal(2)
		assert.NoError(t, adapter.Delete(ctx, "a", "b"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No keys is a no-op", func(t *testing.T) {
		assert.NoError(t, adapter.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_DeleteByPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("Walks every cursor page", func(t *testing.T) {
		mock.ExpectScan(0, "quizzone:catalog:*", scanBatch).SetVal([]string{"quizzone:catalog:home:all"}, 7)
		mock.ExpectDel("quizzone:catalog:home:all").SetVal(1)
		mock.ExpectScan(7, "quizzone:catalog:*", scanBatch).SetVal([]string{}, 0)

		assert.NoError(t, adapter.DeleteByPrefix(ctx, "quizzone:catalog:"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Scan error", func(t *testing.T) {
		scanErr := errors.New("scan failed")
		mock.ExpectScan(0, "quizzone:history:*", scanBatch).SetErr(scanErr)

		assert.ErrorIs(t, adapter.DeleteByPrefix(ctx, "quizzone:history:"), scanErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
