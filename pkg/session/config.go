package session

import "time"

// Config holds session configuration.
type Config struct {
	TTL                     time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_UPDATE_THRESHOLD" envDefault:"5m"`
	CookieName              string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
	HeaderName              string        `env:"SESSION_HEADER_NAME" envDefault:"Authorization"`
	SecureCookies           bool          `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
	RedisKeyPrefix          string        `env:"SESSION_REDIS_PREFIX" envDefault:"session:"`
}

func DefaultConfig() Config {
	return Config{
		TTL:                     30 * 24 * time.Hour,
		ActivityUpdateThreshold: 5 * time.Minute,
		CookieName:              "sid",
		HeaderName:              "Authorization",
		RedisKeyPrefix:          "session:",
	}
}
