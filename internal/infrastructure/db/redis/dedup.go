package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dedupTTL outlives the carrier's redelivery window for unconfirmed pages.
const dedupTTL = 24 * time.Hour

// DedupChecker remembers which event pages have been confirmed.
// Key format: dpd:confirmed:<confirm_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether the page has already been confirmed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, confirmID string) (bool, error) {
	n, err := d.client.Exists(ctx, key(confirmID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the confirmation (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, confirmID string) error {
	if err := d.client.Set(ctx, key(confirmID), "1", dedupTTL).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func key(confirmID string) string {
	return "dpd:confirmed:" + confirmID
}
