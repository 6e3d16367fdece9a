package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment (optionally seeded by a .env file
// in main).
type Config struct {
	TelegramToken      string `env:"TELEGRAM_TOKEN" env-required:"true"`
	Locale             string `env:"BOT_LOCALE" env-default:"en"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" env-default:"10"`
	RewardTTLMinutes   int    `env:"REWARD_TTL_MINUTES" env-default:"30"`
}

// HTTPTimeout is the per-call bound for outbound provider requests.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// RewardTTL is how long a reward snapshot stays fresh past its upstream
// timestamp.
func (c *Config) RewardTTL() time.Duration {
	return time.Duration(c.RewardTTLMinutes) * time.Minute
}

// MustLoad reads the configuration or exits.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return &cfg
}
