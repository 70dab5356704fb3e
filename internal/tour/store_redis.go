// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package tour

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	"github.com/shadowtrails/shadow/internal/platform/constants"
)

// RedisTypeCache implements [TypeCache] using Redis.
//
// The tour-type list changes only when an admin creates a package with a
// new type, so a short TTL keeps the reference endpoint off the document
// store without meaningful staleness.
type RedisTypeCache struct {
	client *redis.Client
}

// NewTypeCache creates a new Redis-backed [TypeCache].
func NewTypeCache(client *redis.Client) *RedisTypeCache {
	return &RedisTypeCache{client: client}
}

// Get returns the cached type list, or apperr.NotFound on a miss.
func (cache *RedisTypeCache) Get(ctx context.Context) ([]string, error) {
	payload, err := cache.client.Get(ctx, constants.RedisKeyTourTypes).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Tour type cache entry")
		}
		return nil, fmt.Errorf("redis_type_cache_get_failed: %w", err)
	}

	var types []string
	if err := json.Unmarshal(payload, &types); err != nil {
		return nil, fmt.Errorf("redis_type_cache_decode_failed: %w", err)
	}

	return types, nil
}

// Set stores the type list with the standard TTL.
func (cache *RedisTypeCache) Set(ctx context.Context, types []string) error {
	payload, err := json.Marshal(types)
	if err != nil {
		return fmt.Errorf("redis_type_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, constants.RedisKeyTourTypes, payload, constants.TourTypeCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_type_cache_set_failed: %w", err)
	}

	return nil
}
