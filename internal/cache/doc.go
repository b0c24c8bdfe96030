// Package cache provides a small generic LRU cache.
//
//	faces := cache.New[float64, font.Face](32)
//	f, err := faces.GetOrCreate(12, func() (font.Face, error) { ... })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
