package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	clientOnce sync.Once
	client     *redis.Client
)

// Client returns the process-wide Redis connection, establishing it on the
// first call. The connection lives for the lifetime of the process.
func Client(addr string) *redis.Client {
	clientOnce.Do(func() {
		client = redis.NewClient(&redis.Options{Addr: addr})

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		log.Printf("Redis connected on %s", addr)
	})

	return client
}

// Store exposes the primitive Redis operations the services are built on.
// Every failure is wrapped so callers can propagate a single store error
// up to the request layer.
type Store struct {
	Client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{Client: client}
}

func (s *Store) HSet(ctx context.Context, key string, fields map[string]any) error {
	if err := s.Client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

func (s *Store) HGet(ctx context.Context, key, field string) (string, error) {
	val, err := s.Client.HGet(ctx, key, field).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("hget %s %s: %w", key, field, err)
	}
	return val, nil
}

func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	val, err := s.Client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return val, nil
}

func (s *Store) HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error) {
	val, err := s.Client.HIncrBy(ctx, key, field, incr).Result()
	if err != nil {
		return 0, fmt.Errorf("hincrby %s %s: %w", key, field, err)
	}
	return val, nil
}

func (s *Store) HIncrByFloat(ctx context.Context, key, field string, incr float64) (float64, error) {
	val, err := s.Client.HIncrByFloat(ctx, key, field, incr).Result()
	if err != nil {
		return 0, fmt.Errorf("hincrbyfloat %s %s: %w", key, field, err)
	}
	return val, nil
}

func (s *Store) SAdd(ctx context.Context, key string, members ...string) error {
	vals := make([]any, len(members))
	for i, m := range members {
		vals[i] = m
	}
	if err := s.Client.SAdd(ctx, key, vals...).Err(); err != nil {
		return fmt.Errorf("sadd %s: %w", key, err)
	}
	return nil
}

func (s *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	val, err := s.Client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", key, err)
	}
	return val, nil
}

func (s *Store) ZAdd(ctx context.Context, key, member string, score float64) error {
	if err := s.Client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("zadd %s: %w", key, err)
	}
	return nil
}

// ZRevRange returns members of a sorted set in descending score order over
// the inclusive index window [start, stop].
func (s *Store) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	val, err := s.Client.ZRevRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("zrevrange %s: %w", key, err)
	}
	return val, nil
}

// LPush prepends value and reports the list's new length.
func (s *Store) LPush(ctx context.Context, key, value string) (int64, error) {
	length, err := s.Client.LPush(ctx, key, value).Result()
	if err != nil {
		return 0, fmt.Errorf("lpush %s: %w", key, err)
	}
	return length, nil
}

func (s *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	val, err := s.Client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}
	return val, nil
}

// LRem removes all occurrences of value and reports how many were removed.
func (s *Store) LRem(ctx context.Context, key, value string) (int64, error) {
	removed, err := s.Client.LRem(ctx, key, 0, value).Result()
	if err != nil {
		return 0, fmt.Errorf("lrem %s: %w", key, err)
	}
	return removed, nil
}

func (s *Store) Del(ctx context.Context, key string) (int64, error) {
	removed, err := s.Client.Del(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("del %s: %w", key, err)
	}
	return removed, nil
}

// Get returns the string value at key, or "" with no error on a missing key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

func (s *Store) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	res, err := s.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", key, err)
	}
	return res > 0, nil
}

// SetDocument overwrites the whole JSON document at key.
func (s *Store) SetDocument(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", key, err)
	}
	if err := s.Client.JSONSet(ctx, key, "$", string(raw)).Err(); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// GetDocument returns the whole JSON document at key, or nil if never set.
func (s *Store) GetDocument(ctx context.Context, key string) (json.RawMessage, error) {
	raw, err := s.Client.JSONGet(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("json.get %s: %w", key, err)
	}
	if raw == "" {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}
