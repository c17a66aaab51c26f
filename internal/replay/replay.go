package replay

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/wolfwire/internal/observability"
	"github.com/danmuck/wolfwire/internal/protocol/codec"
	"github.com/rs/zerolog"
)

// Handler receives each successfully compiled event in capture order.
type Handler func(Event) error

type Options struct {
	// Strict stops the replay at the first malformed record.
	Strict bool
	Logger zerolog.Logger
}

// Summary counts what a replay saw.
type Summary struct {
	Records int
	Decoded int
	Skipped int
}

type Replayer struct {
	opts Options
}

func New(opts Options) *Replayer {
	return &Replayer{opts: opts}
}

// Run reads records from dec until io.EOF. Malformed records are logged and
// skipped unless Strict is set. Codec and handler errors always stop the
// run.
func (r *Replayer) Run(ctx context.Context, dec codec.Decoder, handle Handler) (Summary, error) {
	log := r.opts.Logger
	var sum Summary
	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		record, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			log.Info().
				Int("records", sum.Records).
				Int("decoded", sum.Decoded).
				Int("skipped", sum.Skipped).
				Msg("replay complete")
			return sum, nil
		}
		if err != nil {
			return sum, fmt.Errorf("replay record %d: %w", sum.Records, err)
		}
		seq := sum.Records
		sum.Records++

		ev, err := Route(record)
		channel := string(ev.Channel)
		if channel == "" {
			channel = "unknown"
		}
		observability.RecordDecode(channel, err)
		if err != nil {
			log.Warn().
				Err(err).
				Int("seq", seq).
				Str("channel", channel).
				Str("reason", observability.Reason(err)).
				Msg("malformed record")
			if r.opts.Strict {
				return sum, fmt.Errorf("replay record %d: %w", seq, err)
			}
			sum.Skipped++
			continue
		}
		ev.Seq = seq
		sum.Decoded++
		log.Debug().Int("seq", seq).Str("channel", channel).Msg("record decoded")
		if handle == nil {
			continue
		}
		if err := handle(ev); err != nil {
			return sum, fmt.Errorf("replay handler seq=%d: %w", seq, err)
		}
	}
}
