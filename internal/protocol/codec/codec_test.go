package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/danmuck/wolfwire/internal/protocol"
	"github.com/danmuck/wolfwire/internal/testutil/testlog"
)

func TestDecodeJSONCIntoJudge(t *testing.T) {
	testlog.Start(t)
	data := []byte(`{
		// divine result for day 2
		"agent": 3,
		"day": 2, /* day index */
		"target": 5,
		"result": "WEREWOLF"
	}`)
	raw, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if _, ok := raw["agent"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", raw["agent"])
	}
	j, err := protocol.CompileJudge(raw)
	if err != nil {
		t.Fatalf("compile judge: %v", err)
	}
	if j.Agent() != 3 || j.Day() != 2 || j.Target() != 5 || j.Result() != protocol.SpeciesWerewolf {
		t.Fatalf("unexpected judge: %+v", j)
	}
}

func TestDecodeJSONRejectsFractionalInt(t *testing.T) {
	testlog.Start(t)
	raw, err := DecodeJSON([]byte(`{"day":1,"agent":2.5,"idx":0,"text":"Over","turn":1}`))
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	_, err = protocol.CompileTalk(raw)
	if !errors.Is(err, protocol.ErrFieldType) {
		t.Fatalf("expected ErrFieldType, got %v", err)
	}
}

func TestDecodeJSONTrailingData(t *testing.T) {
	testlog.Start(t)
	_, err := DecodeJSON([]byte(`{"a":1} {"b":2}`))
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}

func TestDecodeJSONNotObject(t *testing.T) {
	testlog.Start(t)
	if _, err := DecodeJSON([]byte(`[1,2,3]`)); err == nil {
		t.Fatalf("expected error for array payload")
	}
}

func TestCBORRoundTripIntoWhisper(t *testing.T) {
	testlog.Start(t)
	data, err := MarshalCBOR(map[string]any{"day": 1, "agent": 2, "idx": 4, "text": "hello", "turn": 0})
	if err != nil {
		t.Fatalf("marshal cbor: %v", err)
	}
	raw, err := DecodeCBOR(data)
	if err != nil {
		t.Fatalf("decode cbor: %v", err)
	}
	w, err := protocol.CompileWhisper(raw)
	if err != nil {
		t.Fatalf("compile whisper: %v", err)
	}
	if w.Day() != 1 || w.Agent() != 2 || w.Index() != 4 || w.Text() != "hello" || w.Turn() != 0 {
		t.Fatalf("unexpected whisper: %+v", w)
	}
}

func TestCBORNegativeSentinels(t *testing.T) {
	testlog.Start(t)
	data, err := MarshalCBOR(map[string]any{"day": -1, "agent": 0, "idx": -1, "text": "", "turn": -1})
	if err != nil {
		t.Fatalf("marshal cbor: %v", err)
	}
	raw, err := DecodeCBOR(data)
	if err != nil {
		t.Fatalf("decode cbor: %v", err)
	}
	talk, err := protocol.CompileTalk(raw)
	if err != nil {
		t.Fatalf("compile talk: %v", err)
	}
	if talk != protocol.EmptyTalk() {
		t.Fatalf("expected empty talk, got %+v", talk)
	}
}

func TestJSONStreamDecoder(t *testing.T) {
	testlog.Start(t)
	stream := `
// first
{"a": 1}
{"b": 2}
`
	dec, err := NewJSONDecoder(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("new decoder: %v", err)
	}
	count := 0
	for {
		_, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Fatalf("expected 2 messages, got %d", count)
	}
}

func TestCBORStreamDecoder(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	for i := 0; i < 3; i++ {
		data, err := MarshalCBOR(map[string]any{"n": i})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		buf.Write(data)
	}
	dec := NewCBORDecoder(&buf)
	for i := 0; i < 3; i++ {
		raw, err := dec.Decode()
		if err != nil {
			t.Fatalf("decode %d: %v", i, err)
		}
		if _, ok := raw["n"]; !ok {
			t.Fatalf("decode %d: missing key", i)
		}
	}
	if _, err := dec.Decode(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestFormats(t *testing.T) {
	testlog.Start(t)
	if f, err := ParseFormat("JSONC"); err != nil || f != FormatJSON {
		t.Fatalf("parse jsonc: %v %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatAuto {
		t.Fatalf("parse empty: %v %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if FormatAuto.Resolve("game.CBOR") != FormatCBOR {
		t.Fatalf("expected cbor for .CBOR")
	}
	if FormatAuto.Resolve("game.jsonc") != FormatJSON {
		t.Fatalf("expected json for .jsonc")
	}
	if FormatCBOR.Resolve("game.json") != FormatCBOR {
		t.Fatalf("explicit format should win")
	}
	if _, err := NewDecoder(Format("yaml"), strings.NewReader("")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
