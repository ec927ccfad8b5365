// Package cache provides a small thread-safe LRU cache.
//
// The schema package uses it to share compiled regular expressions between
// decoded documents, so loading the same schema repeatedly compiles each
// pattern once:
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrLoad(expr, regexp.Compile)
//
// Failed loads are not cached.
package cache
