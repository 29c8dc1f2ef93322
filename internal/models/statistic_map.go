package models

import "fmt"

// Validity tells whether a record's ids match the ids encoded in its query string.
type Validity string

const (
	Valid    Validity = "valid"
	NonValid Validity = "non_valid"
)

func ValidityOf(valid bool) Validity {
	if valid {
		return Valid
	}
	return NonValid
}

// EventKind is the event_type of a record. Only create, update and delete are counted.
type EventKind string

const (
	KindCreate EventKind = "create"
	KindUpdate EventKind = "update"
	KindDelete EventKind = "delete"
)

func (k EventKind) IsKnown() bool {
	switch k {
	case KindCreate, KindUpdate, KindDelete:
		return true
	}
	return false
}

// UnknownEventKindError is returned when a record carries an event_type outside the counted kinds.
type UnknownEventKindError struct {
	Kind EventKind
}

func (e *UnknownEventKindError) Error() string {
	return fmt.Sprintf("unknown event kind %q", string(e.Kind))
}

// DayCounters holds the per-kind event counts of one day bucket.
// Fields are declared in key order so the encoded report lists them sorted.
type DayCounters struct {
	Create int64 `json:"create"`
	Delete int64 `json:"delete"`
	Update int64 `json:"update"`
}

// Increment counts one event of kind. Unknown kinds leave the counters untouched.
func (c *DayCounters) Increment(kind EventKind) error {
	switch kind {
	case KindCreate:
		c.Create++
	case KindUpdate:
		c.Update++
	case KindDelete:
		c.Delete++
	default:
		return &UnknownEventKindError{Kind: kind}
	}
	return nil
}

func (c *DayCounters) Add(other DayCounters) {
	c.Create += other.Create
	c.Update += other.Update
	c.Delete += other.Delete
}

func (c DayCounters) Total() int64 {
	return c.Create + c.Update + c.Delete
}

// StatisticMap aggregates event counts by validity class and day.
//
// Example JSON:
//
//	{
//	    "non_valid": {
//	        "1525132800": {"create": 1, "delete": 1, "update": 0}
//	    },
//	    "valid": {
//	        "1525132800": {"create": 0, "delete": 1, "update": 0}
//	    }
//	}
//
// A map is owned by a single goroutine at a time: the aggregator that fills it, then whoever
// it is handed to. It is never shared for concurrent mutation.
type StatisticMap map[Validity]map[DayKey]*DayCounters

// NewStatisticMap returns an empty map with both validity classes present.
func NewStatisticMap() StatisticMap {
	return StatisticMap{
		Valid:    make(map[DayKey]*DayCounters),
		NonValid: make(map[DayKey]*DayCounters),
	}
}

// Counters returns the counters of (validity, day), inserting zeroed counters first if the
// bucket does not exist yet. m must be non-nil.
func (m StatisticMap) Counters(validity Validity, day DayKey) *DayCounters {
	days, ok := m[validity]
	if !ok {
		days = make(map[DayKey]*DayCounters)
		m[validity] = days
	}
	counters, ok := days[day]
	if !ok {
		counters = &DayCounters{}
		days[day] = counters
	}
	return counters
}

// Lookup returns a copy of the counters of (validity, day) without inserting anything.
func (m StatisticMap) Lookup(validity Validity, day DayKey) (DayCounters, bool) {
	counters, ok := m[validity][day]
	if !ok {
		return DayCounters{}, false
	}
	return *counters, true
}

// Totals sums every bucket of one validity class.
func (m StatisticMap) Totals(validity Validity) DayCounters {
	var total DayCounters
	for _, counters := range m[validity] {
		total.Add(*counters)
	}
	return total
}
