package pattern

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 256

type cacheKey struct {
	pattern string
	dialect Dialect
}

// layoutCache keeps recently compiled layouts, evicting the least recently used one
type layoutCache = lru.Cache[cacheKey, *Layout]

func newLayoutCache(capacity int) *layoutCache {
	if capacity <= 0 {
		capacity = defaultCacheSize
	}
	cache, err := lru.New[cacheKey, *Layout](capacity)
	if err != nil {
		panic(err)
	}
	return cache
}
