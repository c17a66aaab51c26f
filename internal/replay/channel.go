package replay

import (
	"fmt"
	"strings"

	"github.com/danmuck/wolfwire/internal/observability"
	"github.com/danmuck/wolfwire/internal/protocol"
)

// Channel is the stream a raw message arrived on.
type Channel string

const (
	ChannelTalk    Channel = "talk"
	ChannelWhisper Channel = "whisper"
	ChannelDivine  Channel = "divine"
	ChannelMedium  Channel = "medium"
)

// Record envelope keys.
const (
	KeyChannel = "channel"
	KeyMessage = "message"
)

func ParseChannel(raw string) (Channel, error) {
	switch c := Channel(strings.ToLower(strings.TrimSpace(raw))); c {
	case ChannelTalk, ChannelWhisper, ChannelDivine, ChannelMedium:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown channel %q", observability.ErrEnvelope, raw)
	}
}

// Judges reports whether messages on c are judgements.
func (c Channel) Judges() bool {
	return c == ChannelDivine || c == ChannelMedium
}

// UtteranceKind returns the utterance kind carried by c.
func (c Channel) UtteranceKind() (protocol.UtteranceKind, bool) {
	switch c {
	case ChannelTalk:
		return protocol.KindTalk, true
	case ChannelWhisper:
		return protocol.KindWhisper, true
	default:
		return 0, false
	}
}

// Event is one compiled record. Utterance is nil on judge channels and Judge
// is the empty judgement on utterance channels.
type Event struct {
	Seq       int
	Channel   Channel
	Utterance protocol.Utterance
	Judge     protocol.Judge
}

// Route compiles one record envelope.
func Route(record map[string]any) (Event, error) {
	if record == nil {
		return Event{}, fmt.Errorf("%w: nil record", observability.ErrEnvelope)
	}
	name, ok := record[KeyChannel].(string)
	if !ok {
		return Event{}, fmt.Errorf("%w: missing or non-string %q", observability.ErrEnvelope, KeyChannel)
	}
	channel, err := ParseChannel(name)
	if err != nil {
		return Event{}, err
	}
	message, ok := record[KeyMessage].(map[string]any)
	if !ok {
		return Event{Channel: channel}, fmt.Errorf("%w: missing or non-object %q", observability.ErrEnvelope, KeyMessage)
	}
	return Compile(channel, message)
}

// Compile compiles message as the value object carried by channel.
func Compile(channel Channel, message map[string]any) (Event, error) {
	if channel.Judges() {
		judge, err := protocol.CompileJudge(message)
		if err != nil {
			return Event{Channel: channel}, err
		}
		return Event{Channel: channel, Judge: judge}, nil
	}
	kind, ok := channel.UtteranceKind()
	if !ok {
		return Event{}, fmt.Errorf("%w: unknown channel %q", observability.ErrEnvelope, string(channel))
	}
	u, err := protocol.CompileUtterance(kind, message)
	if err != nil {
		return Event{Channel: channel}, err
	}
	return Event{Channel: channel, Judge: protocol.EmptyJudge(), Utterance: u}, nil
}
