package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
)

var (
	ErrUnknownFormat = errors.New("codec: unknown format")
	ErrTrailingData  = errors.New("codec: trailing data after message")
)

// Format names a payload encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ParseFormat accepts auto, json, jsonc and cbor. Empty means auto.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return FormatAuto, nil
	case "json", "jsonc", "jsonl":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// FormatForPath picks a format from a file extension. Anything that is not
// .cbor is read as JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return FormatCBOR
	}
	return FormatJSON
}

// Resolve replaces FormatAuto with the format implied by path.
func (f Format) Resolve(path string) Format {
	if f == FormatAuto || f == "" {
		return FormatForPath(path)
	}
	return f
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// DecodeJSON decodes exactly one JSON or JSONC object.
func DecodeJSON(data []byte) (map[string]any, error) {
	dec := newJSON(jsonc.ToJSON(data))
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return out, nil
}

// DecodeCBOR decodes exactly one CBOR map.
func DecodeCBOR(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := decMode.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("codec: decode cbor: %w", err)
	}
	return out, nil
}

// MarshalCBOR encodes v with core deterministic encoding.
func MarshalCBOR(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Decoder yields one raw message per call and io.EOF after the last one.
type Decoder interface {
	Decode() (map[string]any, error)
}

// NewDecoder returns a stream decoder for format. FormatAuto is treated as
// JSON; callers with a path should Resolve first.
func NewDecoder(format Format, r io.Reader) (Decoder, error) {
	switch format {
	case FormatCBOR:
		return NewCBORDecoder(r), nil
	case FormatJSON, FormatAuto, "":
		return NewJSONDecoder(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

type jsonDecoder struct {
	dec *json.Decoder
}

// NewJSONDecoder reads r fully, strips JSONC syntax and decodes a sequence
// of whitespace separated objects.
func NewJSONDecoder(r io.Reader) (Decoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read json stream: %w", err)
	}
	return &jsonDecoder{dec: newJSON(jsonc.ToJSON(data))}, nil
}

func (d *jsonDecoder) Decode() (map[string]any, error) {
	var out map[string]any
	if err := d.dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}
	return out, nil
}

type cborDecoder struct {
	dec *cbor.Decoder
}

// NewCBORDecoder decodes a CBOR sequence of maps from r.
func NewCBORDecoder(r io.Reader) Decoder {
	return &cborDecoder{dec: decMode.NewDecoder(r)}
}

func (d *cborDecoder) Decode() (map[string]any, error) {
	var out map[string]any
	if err := d.dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("codec: decode cbor: %w", err)
	}
	return out, nil
}

func newJSON(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}
