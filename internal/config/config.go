package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AdminName     string
	AdminPassword string

	ServerPort    string
	SessionSecret string

	// DBDSN is optional; when set the audit trail goes to Postgres.
	DBDSN    string
	SeedFile string

	BcryptCost int
	LoginRate  float64 // login attempts per second
	LoginBurst int
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AdminName:     os.Getenv("ADMIN_NAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBDSN:         os.Getenv("DB_DSN"),
		SeedFile:      os.Getenv("SEED_FILE"),
		BcryptCost:    bcrypt.DefaultCost,
		LoginRate:     5,
		LoginBurst:    10,
	}

	if cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	var err error
	if cfg.BcryptCost, err = intEnv("BCRYPT_COST", cfg.BcryptCost); err != nil {
		return nil, err
	}
	if cfg.LoginBurst, err = intEnv("LOGIN_BURST", cfg.LoginBurst); err != nil {
		return nil, err
	}
	if v := os.Getenv("LOGIN_RATE"); v != "" {
		if cfg.LoginRate, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("LOGIN_RATE: %w", err)
		}
	}

	return cfg, nil
}

// RequireSessionSecret is checked by the HTTP server only; the CLI has no cookies.
func (c *Config) RequireSessionSecret() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
