package protocol

import "fmt"

// CompileTalks compiles a talk history list in order. The first malformed
// element aborts the whole list.
func CompileTalks(items []any) ([]Talk, error) {
	return compileList(items, MessageTalk, CompileTalk)
}

// CompileWhispers compiles a whisper history list in order.
func CompileWhispers(items []any) ([]Whisper, error) {
	return compileList(items, MessageWhisper, CompileWhisper)
}

// CompileJudges compiles a list of judge messages in order.
func CompileJudges(items []any) ([]Judge, error) {
	return compileList(items, MessageJudge, CompileJudge)
}

func compileList[T any](items []any, message string, compile func(map[string]any) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: %w", message, i, DecodeError{
				Message: message,
				Value:   render(item),
				Err:     ErrFieldType,
			})
		}
		v, err := compile(raw)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", message, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
