package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCodes implémente CodeStore : clé otp:<code> → user_id, avec TTL.
type RedisCodes struct {
	rdb *redis.Client
}

func NewRedisCodes(rdb *redis.Client) *RedisCodes {
	return &RedisCodes{rdb: rdb}
}

func (s *RedisCodes) BindCode(ctx context.Context, code, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, "otp:"+code, userID, ttl).Err()
}

func (s *RedisCodes) LookupCode(ctx context.Context, code string) (string, error) {
	userID, err := s.rdb.Get(ctx, "otp:"+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *RedisCodes) DeleteCode(ctx context.Context, code string) error {
	return s.rdb.Del(ctx, "otp:"+code).Err()
}
