package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PAGEDLIST"

// Config holds the CLI configuration, read from flags and PAGEDLIST_* env vars.
type Config struct {
	Source   string
	DSN      string
	Total    int
	PageSize int
	Viewport int
	FailPage int
	Retries  int
	LogLevel string
	Pretty   bool
}

func bindFlags(flags *pflag.FlagSet) {
	flags.String("source", "memory", "list source: memory or postgres")
	flags.String("dsn", "", "postgres connection string (postgres source)")
	flags.Int("total", 95, "number of items (memory source, seed)")
	flags.Int("page-size", 20, "items per page")
	flags.Int("viewport", 8, "visible slots per frame")
	flags.Int("fail-page", 0, "page number that fails once (memory source, 0 disables)")
	flags.Int("retries", 1, "resets allowed after a failed page")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("pretty", false, "human-readable log output")
}

func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	cfg := &Config{
		Source:   v.GetString("source"),
		DSN:      v.GetString("dsn"),
		Total:    v.GetInt("total"),
		PageSize: v.GetInt("page-size"),
		Viewport: v.GetInt("viewport"),
		FailPage: v.GetInt("fail-page"),
		Retries:  v.GetInt("retries"),
		LogLevel: v.GetString("log-level"),
		Pretty:   v.GetBool("pretty"),
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch {
	case c.Source != "memory" && c.Source != "postgres":
		return fmt.Errorf("unknown source %q", c.Source)
	case c.Source == "postgres" && c.DSN == "":
		return fmt.Errorf("postgres source requires --dsn")
	case c.Viewport <= 0:
		return fmt.Errorf("viewport must be positive, got %d", c.Viewport)
	case c.Total < 0:
		return fmt.Errorf("total must not be negative, got %d", c.Total)
	case c.Retries < 0:
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	return nil
}
