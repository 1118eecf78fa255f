package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrementScript resets or increments a window in one round trip so
// concurrent instances never lose an increment.
var incrementScript = redis.NewScript(`
local start = tonumber(redis.call('HGET', KEYS[1], 'start'))
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
if (not start) or (now - start >= window) then
  redis.call('HSET', KEYS[1], 'count', 1, 'start', now)
  redis.call('PEXPIRE', KEYS[1], window)
  return {1, now}
end
local count = redis.call('HINCRBY', KEYS[1], 'count', 1)
return {count, start}
`)

// RedisStore shares counters between instances through Redis hashes.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
}

type RedisOption func(*RedisStore)

func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = strings.Trim(prefix, ":") }
}

func NewRedisStore(rdb redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{rdb: rdb, prefix: "dbc:ratelimit"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(k string) string {
	return s.prefix + ":" + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	vals, err := s.rdb.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return Entry{}, false, err
	}
	if len(vals) == 0 {
		return Entry{}, false, nil
	}
	count, err := strconv.Atoi(vals["count"])
	if err != nil {
		return Entry{}, false, fmt.Errorf("parse count: %w", err)
	}
	startMs, err := strconv.ParseInt(vals["start"], 10, 64)
	if err != nil {
		return Entry{}, false, fmt.Errorf("parse start: %w", err)
	}
	return Entry{Count: count, WindowStart: time.UnixMilli(startMs)}, true, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string, start time.Time, window time.Duration) error {
	k := s.key(key)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, "count", 0, "start", start.UnixMilli())
		pipe.PExpire(ctx, k, window)
		return nil
	})
	return err
}

func (s *RedisStore) Increment(ctx context.Context, key string, now time.Time, window time.Duration) (Entry, error) {
	res, err := incrementScript.Run(ctx, s.rdb, []string{s.key(key)}, now.UnixMilli(), window.Milliseconds()).Int64Slice()
	if err != nil {
		return Entry{}, err
	}
	if len(res) != 2 {
		return Entry{}, errors.New("unexpected increment reply")
	}
	return Entry{Count: int(res[0]), WindowStart: time.UnixMilli(res[1])}, nil
}

var _ Store = (*RedisStore)(nil)
