// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

/*
Package cache provides a thread-safe in-memory LRU cache with TTL support.

The recommendation service uses it to memoize query results: the index is
immutable, so a cached answer stays correct until it expires or is evicted.

# Usage Example

	c := cache.NewLRU[[]string](1024, 10*time.Minute)
	c.Add("toy story", titles)
	if v, ok := c.Get("toy story"); ok {
	    // use v
	}

# Expiration

Entries are checked lazily on Get. CleanupExpired can be called
periodically to reclaim memory held by entries that are never read again.
*/
package cache
