package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// VelocityStore implements ports.VelocityCounter with fixed-window
// counters: INCR + EXPIRE on a key scoped by windowID, where windowID is
// time / windowDuration. The velocity analyzer reads these counters and
// the audit writer increments them after each finalized decision.
type VelocityStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewVelocityStore creates a new Redis-backed velocity counter store.
func NewVelocityStore(client *goredis.Client) *VelocityStore {
	return &VelocityStore{
		client: client,
		prefix: "velocity:",
		now:    time.Now,
	}
}

func (s *VelocityStore) windowKey(key string, window time.Duration) string {
	windowID := s.now().Unix() / int64(window.Seconds())
	return fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)
}

// Incr bumps the counter for key in the current window and returns the
// new count.
func (s *VelocityStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := s.windowKey(key, window)

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("velocity incr: %w", err)
	}

	// Set expiry only on first increment (new window)
	if count == 1 {
		s.client.Expire(ctx, redisKey, window+time.Second) // +1s safety margin
	}

	return count, nil
}

// Count returns the counter for key in the current window. A missing
// key reads as zero.
func (s *VelocityStore) Count(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Get(ctx, s.windowKey(key, window)).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("velocity count: %w", err)
	}
	return count, nil
}
