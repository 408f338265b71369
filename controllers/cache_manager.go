package controllers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ListCachePrefix = "catalog:list:v:"
	CacheVersionKey = "catalog:list:version"
	DefaultCacheTTL = 5 * time.Minute
)

// CacheManager caches rendered product-table fragments in Redis, keyed by
// a version counter that is bumped on every write. All Redis errors are
// treated as cache misses. A nil client disables caching entirely.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{redis: client, ttl: DefaultCacheTTL}
}

// GetListFragment retrieves a cached fragment for the given list view.
func (cm *CacheManager) GetListFragment(ctx context.Context, sort, dir, query string) ([]byte, bool) {
	if cm.redis == nil {
		return nil, false
	}
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.listCacheKey(version, sort, dir, query)).Bytes()
	if err != nil {
		return nil, false
	}
	return cached, true
}

// SetListFragmentAsync caches a rendered fragment without blocking the request.
func (cm *CacheManager) SetListFragmentAsync(sort, dir, query string, fragment []byte) {
	if cm.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}
		key := cm.listCacheKey(version, sort, dir, query)
		if err := cm.redis.Set(bgCtx, key, fragment, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list fragment", zap.Error(err))
		}
	}()
}

// Invalidate bumps the version counter so every cached fragment goes stale.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	if cm.redis == nil {
		return
	}
	if err := cm.redis.Incr(ctx, CacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump list cache version", zap.Error(err))
	}
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	val, err := cm.redis.Get(ctx, CacheVersionKey).Result()
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, CacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (cm *CacheManager) listCacheKey(version int64, sort, dir, query string) string {
	return fmt.Sprintf("%s%d:%s:%s:%s", ListCachePrefix, version, sort, dir, query)
}
