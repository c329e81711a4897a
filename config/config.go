package config

import (
	"time"

	"main/utils"
)

type Config struct {
	Port            string
	DataDir         string
	RedisURL        string
	SessionSecret   string
	SessionDuration time.Duration
	MaxRequestBytes int64
}

// Load reads configuration from the environment. Only SESSION_SECRET_KEY has
// no usable default; main refuses to start without it.
func Load() *Config {
	return &Config{
		Port:            utils.GetEnvAsString("PORT", "8080"),
		DataDir:         utils.GetEnvAsString("DATA_DIR", "./data"),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", ""),
		SessionSecret:   utils.GetEnvAsString("SESSION_SECRET_KEY", ""),
		SessionDuration: utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		MaxRequestBytes: int64(utils.GetEnvAsInt("MAX_REQUEST_BYTES", 1<<20)),
	}
}
