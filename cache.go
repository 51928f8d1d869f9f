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
	// Clean up expired entries every 5 minutes
	cacheCleanup = 5 * time.Minute
)

// NewNameLookupCache creates the memo for search-by-name results. Entries
// must be flushed whenever the tree changes.
func NewNameLookupCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, cacheCleanup)
}

// NewHelpCache creates a cache for rendered help pages.
func NewHelpCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, cacheCleanup)
}

func CacheHelpPage(c *cache.Cache, topic string, helpTxt string) {
	c.Set(topic, helpTxt, cache.DefaultExpiration)
}

func GetHelpPage(c *cache.Cache, topic string) string {
	val, ok := c.Get(topic)
	if !ok {
		return ""
	}
	return val.(string)
}
