package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Session   SessionConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// BackendConfig points the portal at the clinic REST backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig controls the signed session cookie and the store
// behind it. Backend is "memory" or "redis".
type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Backend    string
	Secure     bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Env-only deployments have no .env file.
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	backendTimeout, err := time.ParseDuration(viper.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		backendTimeout = 10 * time.Second
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: getString("APP_PORT", "8080"),
			Env:  getString("APP_ENV", "development"),
		},
		Backend: BackendConfig{
			BaseURL: getString("BACKEND_BASE_URL", "http://localhost:8081"),
			Timeout: backendTimeout,
		},
		Session: SessionConfig{
			Secret:     viper.GetString("SESSION_SECRET"),
			CookieName: getString("SESSION_COOKIE_NAME", "clinic_session"),
			TTL:        sessionTTL,
			Backend:    getString("SESSION_BACKEND", "memory"),
			Secure:     viper.GetBool("SESSION_COOKIE_SECURE"),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getString("REDIS_PORT", "6379"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloat("LOGIN_RATE_LIMIT_RPS", 5),
			Burst: getInt("LOGIN_RATE_LIMIT_BURST", 10),
		},
	}

	return config, nil
}

func getString(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// An explicit zero is a valid setting, so the numeric helpers check
// presence rather than the value.
func getInt(key string, fallback int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return fallback
}
