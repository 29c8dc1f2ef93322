package models

// IDSet is a set of record identifiers. Duplicates collapse on insert.
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s IDSet) Add(id int64) {
	s[id] = struct{}{}
}

// Equal reports whether both sets hold exactly the same members.
func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}
