// Copyright 2025 Zaya Barrini
//   This file is part of ZGDB.
//
//  ZGDB is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ZGDB is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ZGDB.  If not, see <https://www.gnu.org/licenses/>.

package rcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DfltTTLSecs = 600

	keyPrefix = "zgdb:"
)

type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`
	TTLSecs  int    `json:"ttlSecs"`
}

func (conf *Conf) ValidateAndDefaults() error {
	if conf.Host == "" {
		return fmt.Errorf("missing Redis configuration: host")
	}
	if conf.Port == 0 {
		return fmt.Errorf("missing Redis configuration: port")
	}
	if conf.TTLSecs == 0 {
		conf.TTLSecs = DfltTTLSecs
		log.Warn().
			Int("ttlSecs", conf.TTLSecs).
			Msg("Redis cache TTL not specified, using default")
	}
	return nil
}

// Adapter provides a simple read-through cache for API responses.
// Values are stored as JSON with a configured expiration so the
// cache heals itself even without explicit invalidation.
type Adapter struct {
	c   *redis.Client
	ttl time.Duration
}

func (a *Adapter) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	var err error
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to Redis: %w", err)
		default:
			if err = a.c.Ping(ctx).Err(); err == nil {
				return nil
			}
			log.Warn().Err(err).Msg("waiting for Redis...")
			time.Sleep(time.Second)
		}
	}
}

// Get loads a cached value into dst. The second return value is
// false on a cache miss; an actual Redis failure is only logged so
// a broken cache degrades to a miss rather than a request error.
func (a *Adapter) Get(ctx context.Context, key string, dst any) bool {
	cmd := a.c.Get(ctx, keyPrefix+key)
	if cmd.Err() == redis.Nil {
		return false

	} else if cmd.Err() != nil {
		log.Error().Err(cmd.Err()).Str("key", key).Msg("failed to read cache entry")
		return false
	}
	if err := json.Unmarshal([]byte(cmd.Val()), dst); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cache entry")
		return false
	}
	return true
}

func (a *Adapter) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}
	if err := a.c.Set(ctx, keyPrefix+key, string(data), a.ttl).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write cache entry")
	}
}

// Invalidate removes all cache entries written by this service.
// Called after an import changes the stored rules.
func (a *Adapter) Invalidate(ctx context.Context) {
	iter := a.c.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var numRemoved int
	for iter.Next(ctx) {
		if err := a.c.Del(ctx, iter.Val()).Err(); err != nil {
			log.Error().Err(err).Str("key", iter.Val()).Msg("failed to remove cache entry")
			continue
		}
		numRemoved++
	}
	if err := iter.Err(); err != nil {
		log.Error().Err(err).Msg("failed to scan cache entries")
	}
	log.Info().Int("numRemoved", numRemoved).Msg("response cache invalidated")
}

func NewAdapter(conf *Conf) *Adapter {
	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ttl: time.Duration(conf.TTLSecs) * time.Second,
	}
}
