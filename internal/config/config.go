package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
)

type Mode string

const (
	ModeRelease Mode = "release"
	ModeDebug   Mode = "debug"
)

type Config struct {
	Mode Mode

	Port string

	// Pace scales every scripted delay: 0 plays instantly, 1 is real time.
	Pace        float64
	MaxSessions int

	LogLevel  string
	LogFormat string // "json" or "text"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getIntEnv(key string, def int) (int, error) {
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

// Load seeds the environment from the given .env files, or ./.env when none
// are given, and builds the config. Missing .env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	pace, err := getFloatEnv("SUPERAGENT_PACE", 1)
	if err != nil {
		return nil, err
	}
	maxSessions, err := getIntEnv("SUPERAGENT_MAX_SESSIONS", session.DefaultMaxSessions)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Mode:        Mode(strings.ToLower(getEnv("SUPERAGENT_MODE", string(ModeRelease)))),
		Port:        getEnv("PORT", "8080"),
		Pace:        pace,
		MaxSessions: maxSessions,
		LogLevel:    getEnv("SUPERAGENT_LOG_LEVEL", "info"),
		LogFormat:   strings.ToLower(getEnv("SUPERAGENT_LOG_FORMAT", "json")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Mode {
	case ModeRelease, ModeDebug:
	default:
		errs = append(errs, fmt.Errorf("SUPERAGENT_MODE must be release or debug, got %q", c.Mode))
	}
	if c.Pace < 0 {
		errs = append(errs, fmt.Errorf("SUPERAGENT_PACE must not be negative, got %v", c.Pace))
	}
	if c.MaxSessions <= 0 {
		errs = append(errs, fmt.Errorf("SUPERAGENT_MAX_SESSIONS must be positive, got %d", c.MaxSessions))
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT must be numeric, got %q", c.Port))
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("SUPERAGENT_LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
