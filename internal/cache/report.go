// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// report.go provides a Valkey-backed cache for catalog reports. Stats and
// the text summary walk every build in the catalog, so their JSON is kept
// in Valkey and dropped whenever the catalog mutates.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// reportKeyPrefix is the Valkey key prefix for cached reports.
	reportKeyPrefix = "report:"

	// DefaultReportTTL bounds staleness even if an invalidation is missed.
	DefaultReportTTL = 10 * time.Minute
)

// Well-known report keys.
const (
	StatsKey   = "stats"
	SummaryKey = "summary"
)

// ReportCache manages catalog report caching in Valkey.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache backed by the given Valkey client.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl == 0 {
		ttl = DefaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get retrieves a cached report body. Returns false on miss.
func (rc *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("report cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("report cache hit", "key", key)
	return val, true
}

// Set stores a report body with the configured TTL.
func (rc *ReportCache) Set(ctx context.Context, key string, body []byte) {
	if err := rc.client.Set(ctx, reportKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("report cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached report. Called after any catalog
// mutation since every report derives from the full build list.
func (rc *ReportCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, reportKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("report cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("report cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("report cache cleared", "deleted", deleted)
	}
}
