package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore tracks TTLs without real expiry; tests control the clock by
// deleting keys.
type fakeStore struct {
	ttls   map[string]time.Duration
	counts map[string]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ttls:   map[string]time.Duration{},
		counts: map[string]int64{},
	}
}

func (f *fakeStore) Set(_ context.Context, namespace, key string, _ interface{}, ttl time.Duration) error {
	f.ttls[namespace+":"+key] = ttl
	return nil
}

func (f *fakeStore) GetTTL(_ context.Context, namespace, key string) (time.Duration, error) {
	return f.ttls[namespace+":"+key], nil
}

func (f *fakeStore) IncrWithExpire(_ context.Context, namespace, key string, _ time.Duration) (int64, error) {
	f.counts[namespace+":"+key]++
	return f.counts[namespace+":"+key], nil
}

func (f *fakeStore) clear(namespace, key string) {
	delete(f.ttls, namespace+":"+key)
}

func TestCanRequest_FirstRequestAllowed(t *testing.T) {
	store := newFakeStore()
	l := NewLimiter(store, 10*time.Minute, 5, 45*time.Second)

	require.NoError(t, l.CanRequest(context.Background(), "u1", "verify_email"))

	// cooldown key set for the next request
	ttl, _ := store.GetTTL(context.Background(), "otp_rate", "otp:last:u1:verify_email")
	assert.Equal(t, 45*time.Second, ttl)
}

func TestCanRequest_CooldownBlocksImmediateRetry(t *testing.T) {
	store := newFakeStore()
	l := NewLimiter(store, 10*time.Minute, 5, 45*time.Second)

	require.NoError(t, l.CanRequest(context.Background(), "u1", "verify_email"))

	err := l.CanRequest(context.Background(), "u1", "verify_email")
	assert.True(t, errors.Is(err, ErrTooSoon), "expected ErrTooSoon, got %v", err)
}

func TestCanRequest_WindowOverflowBlocks(t *testing.T) {
	store := newFakeStore()
	l := NewLimiter(store, 10*time.Minute, 2, 45*time.Second)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, l.CanRequest(ctx, "u1", "verify_email"))
		store.clear("otp_rate", "otp:last:u1:verify_email") // simulate cooldown expiry
	}

	err := l.CanRequest(ctx, "u1", "verify_email")
	require.True(t, errors.Is(err, ErrBlocked), "expected ErrBlocked, got %v", err)

	// block persists even after the cooldown key lapses
	store.clear("otp_rate", "otp:last:u1:verify_email")
	err = l.CanRequest(ctx, "u1", "verify_email")
	assert.True(t, errors.Is(err, ErrBlocked), "expected ErrBlocked, got %v", err)
}

func TestCanRequest_IndependentPurposes(t *testing.T) {
	store := newFakeStore()
	l := NewLimiter(store, 10*time.Minute, 5, 45*time.Second)
	ctx := context.Background()

	require.NoError(t, l.CanRequest(ctx, "u1", "verify_email"))
	// different purpose has its own cooldown
	require.NoError(t, l.CanRequest(ctx, "u1", "password_reset"))
	// different user likewise
	require.NoError(t, l.CanRequest(ctx, "u2", "verify_email"))
}
