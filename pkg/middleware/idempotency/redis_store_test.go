package idempotency

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute
	redisKey := redisKeyPrefix + "POST /events k1"

	t.Run("reserve free key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX(redisKey, pendingMarker, ttl).SetVal(true)

		resp, err := NewRedisStore(db).Reserve(ctx, "POST /events k1", ttl)
		require.NoError(t, err)
		assert.Nil(t, resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reserve in-flight key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX(redisKey, pendingMarker, ttl).SetVal(false)
		mock.ExpectGet(redisKey).SetVal(pendingMarker)

		_, err := NewRedisStore(db).Reserve(ctx, "POST /events k1", ttl)
		assert.True(t, errors.Is(err, errs.Conflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reserve completed key", func(t *testing.T) {
		cached := Response{Status: 201, ContentType: "application/json", Body: []byte(`{"result":{}}`)}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX(redisKey, pendingMarker, ttl).SetVal(false)
		mock.ExpectGet(redisKey).SetVal(string(data))

		resp, err := NewRedisStore(db).Reserve(ctx, "POST /events k1", ttl)
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, cached, *resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("key expired between calls", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX(redisKey, pendingMarker, ttl).SetVal(false)
		mock.ExpectGet(redisKey).RedisNil()
		mock.ExpectSetNX(redisKey, pendingMarker, ttl).SetVal(true)

		resp, err := NewRedisStore(db).Reserve(ctx, "POST /events k1", ttl)
		require.NoError(t, err)
		assert.Nil(t, resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save and release", func(t *testing.T) {
		resp := Response{Status: 200, ContentType: "application/json", Body: []byte(`{}`)}
		data, err := json.Marshal(resp)
		require.NoError(t, err)

		db, mock := redismock.NewClientMock()
		mock.ExpectSet(redisKey, string(data), ttl).SetVal("OK")
		mock.ExpectDel(redisKey).SetVal(1)

		store := NewRedisStore(db)
		require.NoError(t, store.Save(ctx, "POST /events k1", resp, ttl))
		require.NoError(t, store.Release(ctx, "POST /events k1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
