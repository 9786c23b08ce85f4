package main

import (
	"fmt"
	"txkv/observability"
	"txkv/processor"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history-file"`

	LogLevel  string `toml:"log-level"`
	LogFormat string `toml:"log-format"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:    processor.DefaultPrompt,
		LogLevel:  "info",
		LogFormat: observability.FormatConsole,
	}
}

// LoadConfig reads a TOML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := observability.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.LogLevel, err)
	}

	switch c.LogFormat {
	case "", observability.FormatConsole, observability.FormatJSON:
	default:
		return fmt.Errorf("config: %w: %q", observability.ErrUnknownLogFormat, c.LogFormat)
	}

	return nil
}
