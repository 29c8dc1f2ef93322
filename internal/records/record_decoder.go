package records

import (
	"errors"
	"fmt"

	"log-reader/internal/models"

	"github.com/valyala/fastjson"
)

const (
	fieldTimestamp   = "timestamp"
	fieldEventType   = "event_type"
	fieldIDs         = "ids"
	fieldQueryString = "query_string"
)

var ErrDecodeRecord = errors.New("cannot decode record")

//go:generate mockgen -source=record_decoder.go -destination=./mocks/record_decoder_mock.go -package=mocks
type RecordDecoder interface {
	// Decode parses one JSON line into an EventRecord. Every field is required.
	Decode(line []byte) (*models.EventRecord, error)
}

type recordDecoder struct {
	parsers fastjson.ParserPool
}

// NewRecordDecoder returns a decoder safe for concurrent use by many workers.
func NewRecordDecoder() RecordDecoder {
	return &recordDecoder{}
}

func (d *recordDecoder) Decode(line []byte) (*models.EventRecord, error) {
	p := d.parsers.Get()
	defer d.parsers.Put(p)

	v, err := p.ParseBytes(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeRecord, err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrDecodeRecord, v.Type())
	}

	fields, err := lookupFields(v, fieldTimestamp, fieldEventType, fieldIDs, fieldQueryString)
	if err != nil {
		return nil, err
	}

	timestamp, err := fields[0].Int64()
	if err != nil {
		return nil, fieldError(fieldTimestamp, err)
	}

	eventType, err := fields[1].StringBytes()
	if err != nil {
		return nil, fieldError(fieldEventType, err)
	}

	values, err := fields[2].Array()
	if err != nil {
		return nil, fieldError(fieldIDs, err)
	}
	ids := make([]int64, 0, len(values))
	for _, value := range values {
		id, err := value.Int64()
		if err != nil {
			return nil, fieldError(fieldIDs, err)
		}
		ids = append(ids, id)
	}

	queryString, err := fields[3].StringBytes()
	if err != nil {
		return nil, fieldError(fieldQueryString, err)
	}

	// Values borrowed from the parser are copied out before it returns to the pool.
	return &models.EventRecord{
		Timestamp:   timestamp,
		EventType:   string(eventType),
		IDs:         ids,
		QueryString: string(queryString),
	}, nil
}

var errMissingField = errors.New("missing field")

func lookupFields(v *fastjson.Value, keys ...string) ([]*fastjson.Value, error) {
	fields := make([]*fastjson.Value, len(keys))
	for i, key := range keys {
		field := v.Get(key)
		if field == nil {
			return nil, fieldError(key, errMissingField)
		}
		fields[i] = field
	}
	return fields, nil
}

func fieldError(field string, err error) error {
	return fmt.Errorf("%w: field %q: %w", ErrDecodeRecord, field, err)
}
