package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewRunID generates the identifier attached to every log line of one reader invocation.
// ULIDs sort by creation time, so run IDs order the same way as the runs themselves.
var NewRunID = func() string {
	return "run-" + NewULID()
}
