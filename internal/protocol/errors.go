package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrNilMessage   = errors.New("protocol: nil message")
	ErrMissingField = errors.New("protocol: missing required field")
	ErrFieldType    = errors.New("protocol: field type mismatch")
	ErrUnknownToken = errors.New("protocol: unknown token")
	ErrUnknownKind  = errors.New("protocol: unknown utterance kind")
)

// Message names carried by DecodeError.
const (
	MessageJudge   = "judge"
	MessageTalk    = "talk"
	MessageWhisper = "whisper"
)

// DecodeError reports a raw message that could not be compiled.
// Value is a rendered copy of the offending raw value and is empty when the
// field was missing.
type DecodeError struct {
	Message string
	Field   string
	Value   string
	Err     error
}

func (e DecodeError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("decode %s: %v", e.Message, e.Err)
	case errors.Is(e.Err, ErrMissingField):
		return fmt.Sprintf("decode %s field=%s: %v", e.Message, e.Field, e.Err)
	default:
		return fmt.Sprintf("decode %s field=%s value=%s: %v", e.Message, e.Field, e.Value, e.Err)
	}
}

func (e DecodeError) Unwrap() error {
	return e.Err
}
