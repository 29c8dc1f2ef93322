package records

import (
	"log-reader/internal/models"
)

// Outcome places a record in the statistic: which class, which day and which counter.
type Outcome struct {
	Validity models.Validity
	Day      models.DayKey
	Kind     models.EventKind
}

//go:generate mockgen -source=record_validator.go -destination=./mocks/record_validator_mock.go -package=mocks
type RecordValidator interface {
	// Validate classifies record. A record is valid when the set of its ids equals the set of
	// ids encoded in its query string. Errors come from an unparseable query string; the event
	// kind is not checked here.
	Validate(record *models.EventRecord) (Outcome, error)
}

type recordValidator struct{}

func NewRecordValidator() RecordValidator {
	return &recordValidator{}
}

func (v *recordValidator) Validate(record *models.EventRecord) (Outcome, error) {
	queryIDs, err := ExtractIDs(record.QueryString)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Validity: models.ValidityOf(models.NewIDSet(record.IDs...).Equal(queryIDs)),
		Day:      models.DayBucket(record.Timestamp),
		Kind:     models.EventKind(record.EventType),
	}, nil
}
