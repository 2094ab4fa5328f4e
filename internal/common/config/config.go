package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port        int      `env:"PORT" envDefault:"10000"`
		CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	Postgres struct {
		URL             string        `env:"DATABASE_URL,required,notEmpty"`
		MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	}

	Redis struct {
		// Пустой адрес отключает кэш пользователей
		Addr     string        `env:"REDIS_ADDR" envDefault:""`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		UserTTL  time.Duration `env:"USER_CACHE_TTL" envDefault:"10m"`
	}

	App struct {
		URL     string `env:"APP_URL" envDefault:"https://ton-mini-app-backend.onrender.com"`
		Name    string `env:"APP_NAME" envDefault:"TON Mystery Cases"`
		IconURL string `env:"APP_ICON_URL" envDefault:"https://ton.org/icon.png"`
	}

	Wallet struct {
		SignupBalance float64 `env:"SIGNUP_BALANCE" envDefault:"5.0"`
		Bonus         float64 `env:"WALLET_BONUS" envDefault:"5.0"`
	}
}

// Load reads .env (if present) and the process environment into Config.
func Load() (*Config, error) {
	// В production переменные задаются напрямую, .env может отсутствовать
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.App.URL = strings.TrimRight(cfg.App.URL, "/")

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
