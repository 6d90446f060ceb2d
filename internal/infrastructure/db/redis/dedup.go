package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker guards at-most-once notification delivery across restarts.
// Key format: notify:<dedup_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// Seen atomically marks the key and reports whether it had been marked
// before. SetNX makes check and mark a single round trip, so two workers
// racing on the same key agree on exactly one sender.
func (d *DedupChecker) Seen(ctx context.Context, key string) (bool, error) {
	set, err := d.client.SetNX(ctx, "notify:"+key, "1", dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedup mark: %w", err)
	}
	return !set, nil
}
