// Package tenant resolves the tenant a request is scoped to.
//
// A Resolver extracts an identifier (session binding, X-Tenant-ID header or
// subdomain); Lookup checks the Cache and falls back to the Provider, then
// rejects inactive tenants. Lookup.Middleware stores the tenant in the
// request context so handlers and the logger (LoggerExtractor) can read it.
//
//	lookup := tenant.NewLookup(
//		tenant.NewCompositeResolver(
//			tenant.NewSessionResolver(),
//			tenant.NewHeaderResolver(cfg.HeaderName),
//			tenant.NewSubdomainResolver(cfg.BaseDomain),
//		),
//		tenant.NewPGProvider(pool),
//		tenant.WithCache(tenant.TieredCache{
//			tenant.NewLRUCache(cfg.CacheSize, cfg.CacheTTL),
//			tenant.NewRedisCache(rdb, cfg.RedisKeyPrefix, cfg.CacheTTL),
//		}),
//	)
//	r.Use(lookup.Middleware)
package tenant
