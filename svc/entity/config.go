package entity

import "time"

// CacheConfig configures the Redis read cache in front of the service.
type CacheConfig struct {
	Enabled   bool          `env:"ENTITY_CACHE_ENABLED" envDefault:"true"`
	TTL       time.Duration `env:"ENTITY_CACHE_TTL" envDefault:"5m"`
	KeyPrefix string        `env:"ENTITY_CACHE_PREFIX" envDefault:"entity:"`
}
