package idempotency

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "idempotency:"
	pendingMarker  = "__pending__"
)

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*Response, error) {
	redisKey := redisKeyPrefix + key

	// the key may expire between SetNX and Get, so try a second time before giving up
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, redisKey, pendingMarker, ttl).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to reserve key")
		}
		if ok {
			return nil, nil
		}

		value, err := s.client.Get(ctx, redisKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, errors.Wrap(err, "failed to get reserved key")
		}
		if value == pendingMarker {
			return nil, errors.Wrapf(errs.Conflict, "idempotency key %q is in flight", key)
		}

		var resp Response
		if err := json.Unmarshal([]byte(value), &resp); err != nil {
			return nil, errors.Wrap(err, "failed to decode cached response")
		}
		return &resp, nil
	}
	return nil, errors.Wrapf(errs.Conflict, "idempotency key %q is in flight", key)
}

func (s *RedisStore) Save(ctx context.Context, key string, resp Response, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "failed to encode response")
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, string(data), ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save response")
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to release key")
	}
	return nil
}
