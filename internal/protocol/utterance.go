package protocol

// Reserved utterance texts. They are passed through verbatim.
const (
	// Over means the agent has nothing more to say this day.
	Over = "Over"
	// Skip means the agent passes this turn.
	Skip = "Skip"
)

// Utterance is either a Talk or a Whisper. The set is closed; switch on the
// concrete type or on Kind.
type Utterance interface {
	Kind() UtteranceKind
	Day() int
	Agent() Agent
	Index() int
	Text() string
	Turn() int
	IsOver() bool
	IsSkip() bool

	utterance()
}

type utteranceBody struct {
	day   int
	agent Agent
	idx   int
	text  string
	turn  int
}

func emptyBody() utteranceBody {
	return utteranceBody{day: -1, agent: AgentNone, idx: -1, turn: -1}
}

func bodyFrom(values Values) utteranceBody {
	return utteranceBody{
		day:   values.Int(KeyDay),
		agent: Agent(values.Int(KeyAgent)),
		idx:   values.Int(KeyIdx),
		text:  values.Str(KeyText),
		turn:  values.Int(KeyTurn),
	}
}

// Day is the day of the utterance.
func (u utteranceBody) Day() int { return u.day }

// Agent is the speaker.
func (u utteranceBody) Agent() Agent { return u.agent }

// Index is the position of the utterance within its day.
func (u utteranceBody) Index() int { return u.idx }

// Text is the uttered content.
func (u utteranceBody) Text() string { return u.text }

// Turn is the discussion turn.
func (u utteranceBody) Turn() int { return u.turn }

func (u utteranceBody) IsOver() bool { return u.text == Over }

func (u utteranceBody) IsSkip() bool { return u.text == Skip }

// Talk is an utterance spoken to every agent.
type Talk struct {
	utteranceBody
}

// EmptyTalk returns a Talk holding only sentinel values.
func EmptyTalk() Talk {
	return Talk{emptyBody()}
}

// NewTalk builds a Talk from typed values.
func NewTalk(day int, agent Agent, idx int, text string, turn int) Talk {
	return Talk{utteranceBody{day: day, agent: agent, idx: idx, text: text, turn: turn}}
}

// CompileTalk converts a raw message received on the talk channel.
func CompileTalk(raw map[string]any) (Talk, error) {
	values, err := ParseSemantic(raw, talkSchema)
	if err != nil {
		return Talk{}, err
	}
	return Talk{bodyFrom(values)}, nil
}

func (Talk) Kind() UtteranceKind { return KindTalk }

func (Talk) utterance() {}

// Whisper is an utterance only the werewolf side can hear.
type Whisper struct {
	utteranceBody
}

// EmptyWhisper returns a Whisper holding only sentinel values.
func EmptyWhisper() Whisper {
	return Whisper{emptyBody()}
}

// NewWhisper builds a Whisper from typed values.
func NewWhisper(day int, agent Agent, idx int, text string, turn int) Whisper {
	return Whisper{utteranceBody{day: day, agent: agent, idx: idx, text: text, turn: turn}}
}

// CompileWhisper converts a raw message received on the whisper channel.
func CompileWhisper(raw map[string]any) (Whisper, error) {
	values, err := ParseSemantic(raw, whisperSchema)
	if err != nil {
		return Whisper{}, err
	}
	return Whisper{bodyFrom(values)}, nil
}

func (Whisper) Kind() UtteranceKind { return KindWhisper }

func (Whisper) utterance() {}

// CompileUtterance compiles raw as the given kind. The kind comes from the
// channel the message arrived on; the payload has no say in it.
func CompileUtterance(kind UtteranceKind, raw map[string]any) (Utterance, error) {
	switch kind {
	case KindTalk:
		talk, err := CompileTalk(raw)
		if err != nil {
			return nil, err
		}
		return talk, nil
	case KindWhisper:
		whisper, err := CompileWhisper(raw)
		if err != nil {
			return nil, err
		}
		return whisper, nil
	default:
		return nil, DecodeError{Message: kind.message(), Err: ErrUnknownKind}
	}
}
