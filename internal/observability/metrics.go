package observability

import (
	"errors"
	"sync"

	"github.com/danmuck/wolfwire/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeDecoded = "decoded"
	OutcomeFailed  = "failed"
)

// Error reason labels.
const (
	ReasonMissingField = "missing_field"
	ReasonFieldType    = "field_type"
	ReasonUnknownToken = "unknown_token"
	ReasonEnvelope     = "envelope"
	ReasonOther        = "other"
)

// ErrEnvelope marks failures in the record around a message rather than in
// the message itself. Callers wrap it so RecordDecode can classify them.
var ErrEnvelope = errors.New("observability: malformed envelope")

var (
	registerOnce sync.Once

	decodeRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wolfwire",
			Subsystem: "decode",
			Name:      "records_total",
			Help:      "Raw game messages processed, by channel and outcome.",
		},
		[]string{"channel", "outcome"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wolfwire",
			Subsystem: "decode",
			Name:      "errors_total",
			Help:      "Raw game messages rejected, by channel and reason.",
		},
		[]string{"channel", "reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(decodeRecords, decodeErrors)
	})
}

// RecordDecode counts one processed message. A nil err counts as decoded.
func RecordDecode(channel string, err error) {
	RegisterMetrics()
	if err == nil {
		decodeRecords.WithLabelValues(channel, OutcomeDecoded).Inc()
		return
	}
	decodeRecords.WithLabelValues(channel, OutcomeFailed).Inc()
	decodeErrors.WithLabelValues(channel, Reason(err)).Inc()
}

// Reason classifies a decode error into a metric label.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrEnvelope):
		return ReasonEnvelope
	case errors.Is(err, protocol.ErrMissingField), errors.Is(err, protocol.ErrNilMessage):
		return ReasonMissingField
	case errors.Is(err, protocol.ErrFieldType):
		return ReasonFieldType
	case errors.Is(err, protocol.ErrUnknownToken), errors.Is(err, protocol.ErrUnknownKind):
		return ReasonUnknownToken
	default:
		return ReasonOther
	}
}
