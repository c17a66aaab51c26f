package protocol

import "fmt"

// Agent identifies a game participant. Any integer is a valid Agent value;
// whether it names a live player is the server's concern.
type Agent int

// AgentNone is the sentinel for "no agent".
const AgentNone Agent = 0

// IsNone reports whether a is the no-agent sentinel.
func (a Agent) IsNone() bool {
	return a == AgentNone
}

// ID returns the numeric identifier and false when a is AgentNone.
func (a Agent) ID() (int, bool) {
	if a.IsNone() {
		return 0, false
	}
	return int(a), true
}

func (a Agent) String() string {
	if a.IsNone() {
		return "Agent[none]"
	}
	return fmt.Sprintf("Agent[%02d]", int(a))
}

// Species is the result of a judgement.
type Species uint8

const (
	SpeciesUncertain Species = iota
	SpeciesHuman
	SpeciesWerewolf
)

// Wire tokens for Species. Uncertain is abbreviated on the wire.
const (
	TokenHuman     = "HUMAN"
	TokenWerewolf  = "WEREWOLF"
	TokenUncertain = "UNC"
)

// ParseSpecies maps a wire token to a Species. Matching is exact.
func ParseSpecies(token string) (Species, error) {
	switch token {
	case TokenHuman:
		return SpeciesHuman, nil
	case TokenWerewolf:
		return SpeciesWerewolf, nil
	case TokenUncertain:
		return SpeciesUncertain, nil
	default:
		return SpeciesUncertain, fmt.Errorf("%w: species %q", ErrUnknownToken, token)
	}
}

// Token returns the wire token for s.
func (s Species) Token() string {
	switch s {
	case SpeciesHuman:
		return TokenHuman
	case SpeciesWerewolf:
		return TokenWerewolf
	default:
		return TokenUncertain
	}
}

func (s Species) String() string {
	switch s {
	case SpeciesHuman:
		return "HUMAN"
	case SpeciesWerewolf:
		return "WEREWOLF"
	default:
		return "UNCERTAIN"
	}
}

// UtteranceKind distinguishes spoken talk from private whispers.
type UtteranceKind uint8

const (
	KindTalk UtteranceKind = iota + 1
	KindWhisper
)

// ParseUtteranceKind maps "TALK" or "WHISPER" to a kind. Matching is exact.
func ParseUtteranceKind(name string) (UtteranceKind, error) {
	switch name {
	case "TALK":
		return KindTalk, nil
	case "WHISPER":
		return KindWhisper, nil
	default:
		return 0, fmt.Errorf("%w: utterance kind %q", ErrUnknownToken, name)
	}
}

func (k UtteranceKind) String() string {
	switch k {
	case KindTalk:
		return "TALK"
	case KindWhisper:
		return "WHISPER"
	default:
		return fmt.Sprintf("UtteranceKind(%d)", uint8(k))
	}
}

// message returns the lowercase message name used in decode errors.
func (k UtteranceKind) message() string {
	switch k {
	case KindTalk:
		return MessageTalk
	case KindWhisper:
		return MessageWhisper
	default:
		return "utterance"
	}
}
