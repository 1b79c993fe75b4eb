// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
//	c := cache.NewLRU[string, *tenant.Tenant](1000, 5*time.Minute)
//	c.Set("acme", t)
//	if t, ok := c.Get("acme"); ok {
//		// fresh hit
//	}
//
// Get, Set and Delete are O(1). Expired entries are removed lazily on Get.
package cache
