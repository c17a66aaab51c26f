package protocol

// FieldType is the primitive type a raw field must carry.
type FieldType uint8

const (
	FieldInt FieldType = iota + 1
	FieldString
)

func (t FieldType) String() string {
	switch t {
	case FieldInt:
		return "int"
	case FieldString:
		return "string"
	default:
		return "unknown"
	}
}

// Wire field names.
const (
	KeyAgent  = "agent"
	KeyDay    = "day"
	KeyTarget = "target"
	KeyResult = "result"
	KeyIdx    = "idx"
	KeyText   = "text"
	KeyTurn   = "turn"
)

// FieldSpec declares a required field within a message.
type FieldSpec struct {
	Name string
	Type FieldType
}

// Schema lists the required fields of a message, in the order they are
// checked.
type Schema struct {
	Message string
	Fields  []FieldSpec
}

// Value is one decoded field value.
type Value struct {
	Type   FieldType
	Int    int
	String string
}

// Values holds the typed fields produced by ParseSemantic.
type Values map[string]Value

// Int returns the integer value of a declared int field.
func (v Values) Int(name string) int {
	return v[name].Int
}

// Str returns the string value of a declared string field.
func (v Values) Str(name string) string {
	return v[name].String
}

var judgeSchema = Schema{
	Message: MessageJudge,
	Fields: []FieldSpec{
		{Name: KeyAgent, Type: FieldInt},
		{Name: KeyDay, Type: FieldInt},
		{Name: KeyTarget, Type: FieldInt},
		{Name: KeyResult, Type: FieldString},
	},
}

var utteranceFields = []FieldSpec{
	{Name: KeyDay, Type: FieldInt},
	{Name: KeyAgent, Type: FieldInt},
	{Name: KeyIdx, Type: FieldInt},
	{Name: KeyText, Type: FieldString},
	{Name: KeyTurn, Type: FieldInt},
}

var (
	talkSchema    = Schema{Message: MessageTalk, Fields: utteranceFields}
	whisperSchema = Schema{Message: MessageWhisper, Fields: utteranceFields}
)

// JudgeSchema returns the schema CompileJudge enforces.
func JudgeSchema() Schema {
	return cloneSchema(judgeSchema)
}

// UtteranceSchema returns the schema enforced for the given kind.
func UtteranceSchema(kind UtteranceKind) (Schema, bool) {
	switch kind {
	case KindTalk:
		return cloneSchema(talkSchema), true
	case KindWhisper:
		return cloneSchema(whisperSchema), true
	default:
		return Schema{}, false
	}
}

func cloneSchema(s Schema) Schema {
	fields := make([]FieldSpec, len(s.Fields))
	copy(fields, s.Fields)
	return Schema{Message: s.Message, Fields: fields}
}

// ParseSemantic validates raw against schema and returns typed field values.
// Fields are checked in schema order so the reported error is deterministic.
// Keys not named by the schema are ignored.
func ParseSemantic(raw map[string]any, schema Schema) (Values, error) {
	if raw == nil {
		return nil, DecodeError{Message: schema.Message, Err: ErrNilMessage}
	}
	values := make(Values, len(schema.Fields))
	for _, spec := range schema.Fields {
		rawValue, ok := raw[spec.Name]
		if !ok {
			return nil, DecodeError{Message: schema.Message, Field: spec.Name, Err: ErrMissingField}
		}
		value, err := decodeValue(rawValue, spec.Type)
		if err != nil {
			return nil, DecodeError{
				Message: schema.Message,
				Field:   spec.Name,
				Value:   render(rawValue),
				Err:     err,
			}
		}
		values[spec.Name] = value
	}
	return values, nil
}

func decodeValue(raw any, expected FieldType) (Value, error) {
	value := Value{Type: expected}
	switch expected {
	case FieldInt:
		v, err := intValue(raw)
		if err != nil {
			return Value{}, err
		}
		value.Int = v
	case FieldString:
		v, err := stringValue(raw)
		if err != nil {
			return Value{}, err
		}
		value.String = v
	default:
		return Value{}, ErrFieldType
	}
	return value, nil
}
