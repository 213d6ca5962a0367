package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todo-service/pkg/cache"
	"todo-service/pkg/xerrors"
)

// RedisOTPStore keeps live codes under otp:<userID>:<purpose> until their TTL.
type RedisOTPStore struct {
	cache *cache.Cache
}

func NewRedisOTPStore(c *cache.Cache) *RedisOTPStore {
	return &RedisOTPStore{cache: c}
}

func otpKey(userID, purpose string) string {
	return fmt.Sprintf("%s:%s", userID, purpose)
}

func (s *RedisOTPStore) Save(ctx context.Context, userID, purpose, code string, ttl time.Duration) error {
	return s.cache.Set(ctx, "otp", otpKey(userID, purpose), code, ttl)
}

func (s *RedisOTPStore) Get(ctx context.Context, userID, purpose string) (string, error) {
	val, err := s.cache.Get(ctx, "otp", otpKey(userID, purpose))
	if errors.Is(err, redis.Nil) {
		// expired or never issued, callers cannot tell the difference
		return "", xerrors.ErrExpiredOTP
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, userID, purpose string) error {
	return s.cache.Delete(ctx, "otp", otpKey(userID, purpose))
}
