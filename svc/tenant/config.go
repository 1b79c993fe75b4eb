package tenant

import "time"

// Config holds tenant lookup configuration.
type Config struct {
	HeaderName     string        `env:"TENANT_HEADER" envDefault:"X-Tenant-ID"`
	BaseDomain     string        `env:"TENANT_BASE_DOMAIN" envDefault:""`
	CacheSize      int           `env:"TENANT_CACHE_SIZE" envDefault:"1000"`
	CacheTTL       time.Duration `env:"TENANT_CACHE_TTL" envDefault:"5m"`
	RedisKeyPrefix string        `env:"TENANT_REDIS_PREFIX" envDefault:"tenant:"`
	AllowInactive  bool          `env:"TENANT_ALLOW_INACTIVE" envDefault:"false"`
}
