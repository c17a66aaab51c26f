package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/wolfwire/internal/config"
	"github.com/danmuck/wolfwire/internal/logging"
	"github.com/danmuck/wolfwire/internal/protocol/codec"
	"github.com/danmuck/wolfwire/internal/replay"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(os.Args[1:], os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "wolfreplay: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader) error {
	fs := flag.NewFlagSet("wolfreplay", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config path")
	input := fs.String("input", "", "capture path, or - for stdin (overrides config)")
	format := fs.String("format", "", "auto|json|cbor (overrides config)")
	strict := fs.Bool("strict", false, "stop at the first malformed record")
	initPath := fs.String("init", "", "write a config template to this path and exit")
	force := fs.Bool("force", false, "overwrite an existing template")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *initPath != "" {
		if err := config.WriteTemplate(*initPath, *force); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", *initPath)
		return nil
	}

	cfg, err := resolveConfig(*configPath, *input, *format, *strict)
	if err != nil {
		return err
	}
	logging.ConfigureWith(cfg.Logging())
	log := logging.New("wolfreplay")

	src, closeSrc, err := openInput(cfg.Input, stdin)
	if err != nil {
		return err
	}
	defer closeSrc()

	dec, err := codec.NewDecoder(cfg.Format.Resolve(cfg.Input), src)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := replay.New(replay.Options{Strict: cfg.Strict, Logger: log})
	_, err = r.Run(ctx, dec, func(ev replay.Event) error {
		logEvent(log, ev)
		return nil
	})
	return err
}

func resolveConfig(path, input, format string, strict bool) (config.ReplayConfig, error) {
	cfg := config.DefaultReplayConfig()
	if path != "" {
		loaded, err := config.LoadReplayConfig(path)
		if err != nil {
			return config.ReplayConfig{}, err
		}
		cfg = loaded
	}
	if input != "" {
		cfg.Input = input
	}
	if format != "" {
		f, err := codec.ParseFormat(format)
		if err != nil {
			return config.ReplayConfig{}, err
		}
		cfg.Format = f
	}
	if strict {
		cfg.Strict = true
	}
	if cfg.Input == "" {
		return config.ReplayConfig{}, fmt.Errorf("no input: pass -input or set input in the config")
	}
	if err := config.ValidateReplayConfig(cfg); err != nil {
		return config.ReplayConfig{}, err
	}
	return cfg, nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open capture: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func logEvent(log zerolog.Logger, ev replay.Event) {
	if ev.Utterance != nil {
		u := ev.Utterance
		log.Info().
			Int("seq", ev.Seq).
			Str("kind", u.Kind().String()).
			Int("day", u.Day()).
			Int("turn", u.Turn()).
			Int("idx", u.Index()).
			Stringer("agent", u.Agent()).
			Str("text", u.Text()).
			Msg("utterance")
		return
	}
	j := ev.Judge
	log.Info().
		Int("seq", ev.Seq).
		Str("channel", string(ev.Channel)).
		Int("day", j.Day()).
		Stringer("agent", j.Agent()).
		Stringer("target", j.Target()).
		Str("result", j.Result().String()).
		Msg("judge")
}
