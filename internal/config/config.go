// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 集中所有環境變數設定，程序啟動時解析一次後顯式傳遞
type Config struct {
	AppName    string `env:"APP_NAME" envDefault:"devtask"`
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// Security
	SecretKey                string `env:"SECRET_KEY,required"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"1440"`

	// Database
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Load 解析環境變數並回傳 Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// AccessTokenTTL 回傳存取令牌的預設有效期間
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}
