package rate

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Store is the slice of cache behaviour the limiter needs; *cache.Cache
// satisfies it.
type Store interface {
	Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error
	GetTTL(ctx context.Context, namespace, key string) (time.Duration, error)
	IncrWithExpire(ctx context.Context, namespace, key string, window time.Duration) (int64, error)
}

type Limiter struct {
	cache       Store
	window      time.Duration
	maxInWindow int
	cooldown    time.Duration
}

func NewLimiter(cache Store, window time.Duration, max int, cooldown time.Duration) *Limiter {
	return &Limiter{cache: cache, window: window, maxInWindow: max, cooldown: cooldown}
}

var (
	ErrTooSoon = errors.New("please wait before requesting another OTP")
	ErrBlocked = errors.New("too many OTP requests; try again later")
)

func (l *Limiter) CanRequest(ctx context.Context, userID, purpose string) error {
	blockKey := fmt.Sprintf("otp:block:%s:%s", userID, purpose)
	lastKey := fmt.Sprintf("otp:last:%s:%s", userID, purpose)
	countKey := fmt.Sprintf("otp:count:%s:%s", userID, purpose)

	// Blocked from an earlier overflow?
	if ttl, _ := l.cache.GetTTL(ctx, "otp_rate", blockKey); ttl > 0 {
		return fmt.Errorf("%w: try again after %d seconds", ErrBlocked, int(ttl.Seconds()))
	}

	// Still cooling down from the previous request?
	if ttl, _ := l.cache.GetTTL(ctx, "otp_rate", lastKey); ttl > 0 {
		return fmt.Errorf("%w: wait %d seconds", ErrTooSoon, int(ttl.Seconds()))
	}

	cnt, err := l.cache.IncrWithExpire(ctx, "otp_rate", countKey, l.window)
	if err != nil {
		return err
	}

	if int(cnt) > l.maxInWindow {
		// window exhausted, block for an extended period
		_ = l.cache.Set(ctx, "otp_rate", blockKey, "1", l.window*3)
		return fmt.Errorf("%w: try again after %d seconds", ErrBlocked, int((l.window * 3).Seconds()))
	}

	_ = l.cache.Set(ctx, "otp_rate", lastKey, "1", l.cooldown)

	return nil
}
