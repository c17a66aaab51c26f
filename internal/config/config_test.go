package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/wolfwire/internal/protocol/codec"
	"github.com/danmuck/wolfwire/internal/testutil/testlog"
	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadReplayConfigTemplate(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadReplayConfig(writeConfig(t, Template()))
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Input != "captures/game.jsonc" {
		t.Fatalf("unexpected input: %q", cfg.Input)
	}
	if cfg.Format != codec.FormatAuto || cfg.Strict {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Log.Level != zerolog.InfoLevel || !cfg.Log.Timestamp || cfg.Log.NoColor {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadReplayConfigDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadReplayConfig(writeConfig(t, `
format = "cbor"
strict = true

[log]
level = "debug"
`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Format != codec.FormatCBOR || !cfg.Strict || cfg.Input != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Log.Level != zerolog.DebugLevel || !cfg.Log.Timestamp {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	lc := cfg.Logging()
	if lc.Level != zerolog.DebugLevel || !lc.Timestamp {
		t.Fatalf("unexpected logging config: %+v", lc)
	}
}

func TestLoadReplayConfigBadFormat(t *testing.T) {
	testlog.Start(t)
	if _, err := LoadReplayConfig(writeConfig(t, `format = "xml"`)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadReplayConfigBadLevel(t *testing.T) {
	testlog.Start(t)
	if _, err := LoadReplayConfig(writeConfig(t, "[log]\nlevel = \"loud\"\n")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadReplayConfigUnknownKey(t *testing.T) {
	testlog.Start(t)
	_, err := LoadReplayConfig(writeConfig(t, `inptu = "x.json"`))
	if err == nil || !strings.Contains(err.Error(), "inptu") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestStdinNeedsFormat(t *testing.T) {
	testlog.Start(t)
	if _, err := LoadReplayConfig(writeConfig(t, `input = "-"`)); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := LoadReplayConfig(writeConfig(t, "input = \"-\"\nformat = \"json\"\n")); err != nil {
		t.Fatalf("load config: %v", err)
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "replay.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected existing config error")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite template: %v", err)
	}
}
