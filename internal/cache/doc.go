// Package cache provides a generic, thread-safe LRU cache.
//
// Cache[K, V] holds at most a fixed number of entries and evicts the least
// recently used one when a new key would exceed that limit:
//
//	c := cache.New[string, image.Image](32)
//	c.Set(uri, img)
//	img, ok := c.Get(uri)
//
// A capacity of 0 disables eviction.
package cache
