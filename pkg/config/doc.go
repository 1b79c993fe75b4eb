// Package config loads typed configuration from environment variables.
//
// Structs describe their settings with `env` tags (github.com/caarlos0/env/v11);
// a .env file is picked up through github.com/joho/godotenv. Load caches each
// config type after the first successful parse so packages can call it freely.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
