package aggregators

import (
	"log-reader/internal/models"
)

type ResultMerger interface {
	// Merge folds incoming into acc and returns the accumulated map.
	//
	// When acc is nil or empty, incoming itself is returned and becomes the accumulator, so the
	// caller must not reuse incoming afterwards. Otherwise acc is mutated: missing day buckets are
	// moved over from incoming and existing ones are summed field by field. Merging is
	// associative and commutative.
	Merge(acc, incoming models.StatisticMap) models.StatisticMap
}

type resultMerger struct{}

func NewResultMerger() ResultMerger {
	return &resultMerger{}
}

func (m *resultMerger) Merge(acc, incoming models.StatisticMap) models.StatisticMap {
	if len(acc) == 0 {
		return incoming
	}

	for validity, days := range incoming {
		accDays, ok := acc[validity]
		if !ok {
			acc[validity] = days
			continue
		}
		for day, counters := range days {
			existing, ok := accDays[day]
			if !ok {
				accDays[day] = counters
				continue
			}
			existing.Add(*counters)
		}
	}
	return acc
}
