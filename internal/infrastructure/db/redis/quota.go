package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const quotaTTL = 24 * time.Hour

// QuotaKeeper meters per-user AI usage with a daily counter in Redis.
// Key format: aiquota:<user_id>:<yyyy-mm-dd>
type QuotaKeeper struct {
	client *redis.Client
	limit  int64
}

// NewQuotaKeeper creates a QuotaKeeper wrapping the given Redis client.
// A limit of 0 or less disables metering entirely.
func NewQuotaKeeper(client *redis.Client, limit int) *QuotaKeeper {
	return &QuotaKeeper{client: client, limit: int64(limit)}
}

// Allow consumes one unit of today's budget and reports whether the call is
// within the limit.
func (q *QuotaKeeper) Allow(ctx context.Context, userID string) (bool, error) {
	if q.limit <= 0 {
		return true, nil
	}

	key := q.key(userID, time.Now().UTC())
	n, err := q.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("quota incr: %w", err)
	}
	if n == 1 {
		// First hit today: the counter expires with the day's window.
		if err := q.client.Expire(ctx, key, quotaTTL).Err(); err != nil {
			return false, fmt.Errorf("quota expire: %w", err)
		}
	}
	return n <= q.limit, nil
}

func (q *QuotaKeeper) key(userID string, now time.Time) string {
	return fmt.Sprintf("aiquota:%s:%s", userID, now.Format("2006-01-02"))
}
