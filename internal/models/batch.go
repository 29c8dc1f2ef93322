package models

// Batch is a group of log files dispatched to concurrent workers in one round.
// Index counts batches from zero within a run.
type Batch struct {
	Index int
	Files []string
}

// FileResult is the single message a worker sends when it is done with its file.
// Exactly one of Statistic and Err is meaningful.
type FileResult struct {
	Filename  string
	Statistic StatisticMap
	Err       error
}
