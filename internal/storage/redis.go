package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"taam-menu/internal/domain"
)

// RedisCartStore shares session carts across replicas. Keys expire after the
// TTL so abandoned carts clean themselves up.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.key(sessionID), payload, s.TTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.key(sessionID)).Err()
}
