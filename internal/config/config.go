package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env            string        `env:"APP_ENV" env-default:"development"`
	Port           string        `env:"PORT" env-default:"5000"`
	MongoURI       string        `env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	MongoDatabase  string        `env:"MONGO_DATABASE" env-default:"speakup"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"JWT_EXPIRE" env-default:"168h"` // 7 days
	FrontendURL    string        `env:"FRONTEND_URL"`
	DBPingInterval time.Duration `env:"DB_PING_INTERVAL" env-default:"5s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return &cfg, nil
}

func (c *Config) Production() bool { return c.Env == "production" }
