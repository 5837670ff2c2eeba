package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"inn/shared/cache"
	"inn/shared/constant"
	"inn/shared/dto"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a prefix and identifying parts into a cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from pagination and filter
// state, hashed so arbitrary filter values stay key-safe.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	payload, err := json.Marshal(args)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal filter args for cache key")

		payload = []byte(constant.Empty)
	}

	sum := sha256.Sum256(append([]byte(where), payload...))

	return BuildCacheKey(
		prefix,
		fmt.Sprintf("p%d", params.Page),
		fmt.Sprintf("l%d", params.Limit),
		params.SortBy,
		params.SortDir,
		hex.EncodeToString(sum[:8]),
	)
}

// InvalidateCaches clears every cache entry under the given prefix. Failures
// are logged and swallowed: stale cache entries expire on their own.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
