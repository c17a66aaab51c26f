package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/wolfwire/internal/logging"
	"github.com/danmuck/wolfwire/internal/protocol/codec"
	"github.com/rs/zerolog"
)

// ReplayConfig drives one wolfreplay run.
type ReplayConfig struct {
	Input  string
	Format codec.Format
	Strict bool
	Log    LogConfig
}

type LogConfig struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

type fileConfig struct {
	Input  string  `toml:"input"`
	Format string  `toml:"format"`
	Strict bool    `toml:"strict"`
	Log    fileLog `toml:"log"`
}

type fileLog struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{
		Format: codec.FormatAuto,
		Log: LogConfig{
			Level:     zerolog.InfoLevel,
			Timestamp: true,
		},
	}
}

// LoadReplayConfig reads a TOML file over the defaults. Keys absent from the
// file keep their default values.
func LoadReplayConfig(path string) (ReplayConfig, error) {
	cfg := DefaultReplayConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return ReplayConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return ReplayConfig{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("format") {
		f, err := codec.ParseFormat(raw.Format)
		if err != nil {
			return ReplayConfig{}, fmt.Errorf("parse format: %w", err)
		}
		cfg.Format = f
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("log", "level") {
		lvl, ok := logging.ParseLevel(raw.Log.Level)
		if !ok {
			return ReplayConfig{}, fmt.Errorf("parse log.level: unknown level %q", raw.Log.Level)
		}
		cfg.Log.Level = lvl
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if err := ValidateReplayConfig(cfg); err != nil {
		return ReplayConfig{}, err
	}
	return cfg, nil
}

func ValidateReplayConfig(cfg ReplayConfig) error {
	switch cfg.Format {
	case codec.FormatAuto, codec.FormatJSON, codec.FormatCBOR:
	default:
		return fmt.Errorf("replay config has unknown format %q", string(cfg.Format))
	}
	if cfg.Format == codec.FormatAuto && strings.TrimSpace(cfg.Input) == "-" {
		return fmt.Errorf("replay config needs an explicit format when reading stdin")
	}
	return nil
}

// Logging converts the log section into a logger configuration for the
// runtime profile.
func (c ReplayConfig) Logging() logging.Config {
	out := logging.DefaultConfig(logging.ProfileRuntime)
	out.Level = c.Log.Level
	out.Timestamp = c.Log.Timestamp
	out.NoColor = c.Log.NoColor
	return out
}
