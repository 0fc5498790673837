package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	HTTPAddr      string `koanf:"http_addr"`
	MongoURI      string `koanf:"mongo_uri"`
	MongoDB       string `koanf:"mongo_db"`
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	JWTSecret     string `koanf:"jwt_secret"`
	CookieSecure  bool   `koanf:"cookie_secure"`
	AdminEmail    string `koanf:"admin_email"`
	AdminPassword string `koanf:"admin_password"`
}

// Load reads config.yaml if present, then lets environment variables override
// it (JWT_SECRET -> jwt_secret and so on). The signing secret has no default:
// its absence is startup-fatal for the caller.
func Load() (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := k.Load(file.Provider("config.yaml"), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, err
	}

	if !k.Exists("http_addr") {
		k.Set("http_addr", ":5000")
	}
	if !k.Exists("mongo_uri") {
		k.Set("mongo_uri", "mongodb://localhost:27017")
	}
	if !k.Exists("mongo_db") {
		k.Set("mongo_db", "kodomart")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt_secret is not set")
	}
	return &cfg, nil
}
