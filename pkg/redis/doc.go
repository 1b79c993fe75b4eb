// Package redis connects to Redis with github.com/redis/go-redis/v9 and
// exposes a readiness check. The client is shared by the session store,
// the tenant cache and the entity read cache.
package redis
