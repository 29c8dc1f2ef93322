package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"log-reader/internal/models"
)

const (
	querySeparator = "&"
	pairSeparator  = "="
	queryIDKey     = "id"
)

var (
	ErrMalformedQuery = errors.New("malformed query string")
	ErrInvalidQueryID = errors.New("invalid query id")
)

// ExtractIDs returns the set of integer values bound to the "id" key in query.
//
// Segments are separated by '&'. Empty segments are ignored, a non-empty segment without '='
// is rejected with ErrMalformedQuery, and an id value that is not an integer is rejected with
// ErrInvalidQueryID. When a segment holds several '=', the value is the text between the first
// and the second one. Keys other than "id" (including lookalikes such as "ida") are ignored.
func ExtractIDs(query string) (models.IDSet, error) {
	ids := models.NewIDSet()
	for _, segment := range strings.Split(query, querySeparator) {
		if segment == "" {
			continue
		}

		fields := strings.Split(segment, pairSeparator)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: segment %q has no %q", ErrMalformedQuery, segment, pairSeparator)
		}
		if fields[0] != queryIDKey {
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQueryID, fields[1])
		}
		ids.Add(id)
	}
	return ids, nil
}
