package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)

	dotenvOnce sync.Once
)

// Load parses environment variables into v using `env` struct tags.
// A .env file in the working directory is loaded once per process if present.
// Each config type is parsed once; later calls return the cached copy.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	parsed, err := Parse[T]()
	if err != nil {
		return err
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse reads T from the environment without touching the cache or .env files.
func Parse[T any](opts ...env.Options) (T, error) {
	var v T
	var err error
	if len(opts) > 0 {
		err = env.ParseWithOptions(&v, opts[0])
	} else {
		err = env.Parse(&v)
	}
	if err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// Reset drops every cached config. Intended for tests.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}
