package config

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"time"

	"car-auction/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port          string
	LogLevel      string
	SessionSecret []byte
	SessionTTL    time.Duration
	BcryptCost    int
	ExtendPolicy  string
	AdminKey      string
	SeedDemo      bool
}

// Load reads an optional .env file, then the process environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		utils.Info("No .env file found, using system environment variables", nil)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ExtendPolicy: getEnv("EXTEND_POLICY", "revive"),
		AdminKey:     getEnv("ADMIN_KEY", ""),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("config: invalid SESSION_TTL %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("config: BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	cfg.BcryptCost = cost

	seed, err := strconv.ParseBool(getEnv("SEED_DEMO", "false"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid SEED_DEMO: %w", err)
	}
	cfg.SeedDemo = seed

	if secret := getEnv("SESSION_SECRET", ""); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		cfg.SessionSecret = make([]byte, 32)
		if _, err := rand.Read(cfg.SessionSecret); err != nil {
			return nil, fmt.Errorf("config: generate session secret: %w", err)
		}
		utils.Warn("SESSION_SECRET not set, sessions will not survive a restart", nil)
	}

	return cfg, nil
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
