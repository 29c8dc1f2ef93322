package dispatchers

import (
	"iter"

	"log-reader/internal/models"
)

// Batches groups files into consecutive batches of size files; the last batch holds the
// remainder. A non-positive size is treated as 1. The first error from files is passed through
// and ends the sequence; batches already yielded stay valid.
func Batches(files iter.Seq2[string, error], size int) iter.Seq2[models.Batch, error] {
	if size < 1 {
		size = 1
	}
	return func(yield func(models.Batch, error) bool) {
		index := 0
		pending := make([]string, 0, size)
		for filename, err := range files {
			if err != nil {
				yield(models.Batch{}, err)
				return
			}
			pending = append(pending, filename)
			if len(pending) < size {
				continue
			}
			if !yield(models.Batch{Index: index, Files: pending}, nil) {
				return
			}
			index++
			pending = make([]string, 0, size)
		}
		if len(pending) > 0 {
			yield(models.Batch{Index: index, Files: pending}, nil)
		}
	}
}
