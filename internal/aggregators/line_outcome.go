package aggregators

import (
	"github.com/rs/zerolog"

	"log-reader/internal/shared/loggers"
)

const (
	outcomeCounted       = "counted"
	outcomeBlank         = "blank"
	outcomeDecodeFailed  = "decode_failed"
	outcomeQueryRejected = "query_rejected"
	outcomeUnknownKind   = "unknown_event_type"
)

type lineOutcome struct {
	label string
	err   error
}

var (
	lineCounted = lineOutcome{label: outcomeCounted}
	lineBlank   = lineOutcome{label: outcomeBlank}
)

func logLineOutcome(logger *zerolog.Logger, outcome lineOutcome, lineNumber int) {
	switch outcome.label {
	case outcomeCounted:
		return
	case outcomeBlank:
		logger.Debug().Int(loggers.FieldLine, lineNumber).Msg("skipping blank line")
	default:
		logger.Error().
			Err(outcome.err).
			Int(loggers.FieldLine, lineNumber).
			Str("outcome", outcome.label).
			Msg("skipping line")
	}
}

// lineTally counts lines per outcome label within one file.
type lineTally map[string]int

func (t lineTally) skipped() int {
	n := 0
	for label, count := range t {
		if label != outcomeCounted {
			n += count
		}
	}
	return n
}

func (t lineTally) flush() {
	for label, count := range t {
		metricLineProcessedTotal.WithLabelValues(label).Add(float64(count))
	}
}
