// Package config loads run settings from the environment.
//
// Values come from VNL_* environment variables, optionally seeded from a .env file in the
// working directory. Unset variables fall back to defaults that scrape the 2019 women's
// VNL and write CSV files into the current directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/vnl-stats/internal/scraper"
	"github.com/pfrederiksen/vnl-stats/internal/vnl"
)

// Config holds the settings for one run
type Config struct {
	BaseURL   string
	Season    string
	Gender    string
	OutDir    string
	Format    string
	LogLevel  string
	Render    bool
	Timeout   time.Duration
	UserAgent string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		BaseURL:   vnl.DefaultBaseURL,
		Season:    vnl.DefaultSeason,
		Gender:    vnl.DefaultGender,
		OutDir:    ".",
		Format:    "csv",
		LogLevel:  "info",
		UserAgent: scraper.UserAgent,
	}
}

// Load reads the given .env files (a missing file is not an error) and then the environment
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an environment lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	setString(&cfg.BaseURL, getenv("VNL_BASE_URL"))
	setString(&cfg.Season, getenv("VNL_SEASON"))
	setString(&cfg.Gender, getenv("VNL_GENDER"))
	setString(&cfg.OutDir, getenv("VNL_OUT_DIR"))
	setString(&cfg.Format, getenv("VNL_FORMAT"))
	setString(&cfg.LogLevel, getenv("VNL_LOG_LEVEL"))
	setString(&cfg.UserAgent, getenv("VNL_USER_AGENT"))

	if v := strings.TrimSpace(getenv("VNL_RENDER")); v != "" {
		render, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("VNL_RENDER: %w", err)
		}
		cfg.Render = render
	}

	if v := strings.TrimSpace(getenv("VNL_TIMEOUT")); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("VNL_TIMEOUT: %w", err)
		}
		if timeout < 0 {
			return Config{}, fmt.Errorf("VNL_TIMEOUT: negative duration %s", v)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// Site returns the VNL edition described by the config
func (c Config) Site() vnl.Site {
	return vnl.Site{
		BaseURL: c.BaseURL,
		Season:  c.Season,
		Gender:  c.Gender,
	}
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
