package aggregators

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"time"

	"log-reader/internal/models"
	"log-reader/internal/records"
	"log-reader/internal/shared/loggers"
)

const readBufferSize = 64 * 1024

//go:generate mockgen -source=file_aggregator.go -destination=./mocks/file_aggregator_mock.go -package=mocks
type FileAggregator interface {
	// Run reads filename line by line and counts every record into a fresh StatisticMap.
	// Lines that cannot be decoded or validated are logged and skipped; only failures to open
	// or read the file, or cancellation of ctx, make Run return an error.
	Run(ctx context.Context, filename string) (models.StatisticMap, error)
}

type fileAggregator struct {
	recordDecoder   records.RecordDecoder
	recordValidator records.RecordValidator
}

func NewFileAggregator(recordDecoder records.RecordDecoder, recordValidator records.RecordValidator) FileAggregator {
	return &fileAggregator{recordDecoder: recordDecoder, recordValidator: recordValidator}
}

func (a *fileAggregator) Run(ctx context.Context, filename string) (models.StatisticMap, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldFile, filename).Logger()
	logger.Info().Msg("processing log file")
	start := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		metricFileAggregatedTotal.WithLabelValues(codeInternalFileOpenFailed).Inc()
		return nil, errInternalFileOpenFailed(filename, err)
	}
	defer file.Close()

	statistic := models.NewStatisticMap()
	tally := make(lineTally)
	reader := bufio.NewReaderSize(file, readBufferSize)
	for lineNumber := 1; ; lineNumber++ {
		if err := ctx.Err(); err != nil {
			tally.flush()
			metricFileAggregatedTotal.WithLabelValues(codeInternalFileCancelled).Inc()
			return nil, errInternalFileCancelled(filename, err)
		}

		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			outcome := a.aggregateLine(statistic, line)
			tally[outcome.label]++
			logLineOutcome(&logger, outcome, lineNumber)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			tally.flush()
			metricFileAggregatedTotal.WithLabelValues(codeInternalFileReadFailed).Inc()
			return nil, errInternalFileReadFailed(filename, readErr)
		}
	}

	tally.flush()
	recordCounted(statistic)
	metricFileAggregatedTotal.WithLabelValues(codeNone).Inc()
	metricFileAggregationDuration.Observe(time.Since(start).Seconds())
	logger.Info().
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Int("lines_counted", tally[outcomeCounted]).
		Int("lines_skipped", tally.skipped()).
		Msg("finished log file")

	return statistic, nil
}

// aggregateLine decodes, classifies and counts one line into statistic.
func (a *fileAggregator) aggregateLine(statistic models.StatisticMap, line []byte) lineOutcome {
	if isBlank(line) {
		return lineBlank
	}

	record, err := a.recordDecoder.Decode(line)
	if err != nil {
		return lineOutcome{label: outcomeDecodeFailed, err: err}
	}

	outcome, err := a.recordValidator.Validate(record)
	if err != nil {
		return lineOutcome{label: outcomeQueryRejected, err: err}
	}

	if err := statistic.Counters(outcome.Validity, outcome.Day).Increment(outcome.Kind); err != nil {
		return lineOutcome{label: outcomeUnknownKind, err: err}
	}
	return lineCounted
}

func recordCounted(statistic models.StatisticMap) {
	for _, validity := range []models.Validity{models.Valid, models.NonValid} {
		totals := statistic.Totals(validity)
		metricRecordCountedTotal.WithLabelValues(string(validity), string(models.KindCreate)).Add(float64(totals.Create))
		metricRecordCountedTotal.WithLabelValues(string(validity), string(models.KindUpdate)).Add(float64(totals.Update))
		metricRecordCountedTotal.WithLabelValues(string(validity), string(models.KindDelete)).Add(float64(totals.Delete))
	}
}

func isBlank(line []byte) bool {
	for _, c := range line {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
