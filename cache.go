// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired renderings every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for ASCII renderings of trees
func NewRenderCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, renderCacheCleanup)
}

func CacheRendering(c *cache.Cache, key string, rendering string) {
	c.Set(key, rendering, cache.DefaultExpiration)
}

func GetRendering(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// RenderStore returns the ASCII rendering of the store's tree, reusing the
// cached one while the store is unchanged.
func RenderStore(c *cache.Cache, s *Store) string {
	key := s.CacheKey()
	if rendering, ok := GetRendering(c, key); ok {
		return rendering
	}
	rendering := s.Tree().String()
	CacheRendering(c, key, rendering)
	return rendering
}
