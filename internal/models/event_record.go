package models

// EventRecord is one decoded line of a day log.
//
// Example line:
//
//	{"timestamp": 1525164213, "event_type": "delete", "ids": [7, 1, 2], "query_string": "id=2&x=y&id=7&id=1"}
//
// IDs is the identifier set the event actually touched; QueryString is the raw request it was
// recorded from, whose id= pairs are expected to name the same set.
type EventRecord struct {
	Timestamp   int64
	EventType   string
	IDs         []int64
	QueryString string
}
