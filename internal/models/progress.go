package models

import "time"

type RunState string

const (
	RunStatePending   RunState = "pending"
	RunStateRunning   RunState = "running"
	RunStateSucceeded RunState = "succeeded"
	RunStateFailed    RunState = "failed"
)

// Progress is a point-in-time view of a report run, served on the status endpoint and logged
// when the run ends.
type Progress struct {
	State            RunState   `json:"state"`
	Directory        string     `json:"directory,omitempty"`
	FilesDispatched  int        `json:"files_dispatched"`
	FilesSucceeded   int        `json:"files_succeeded"`
	FilesFailed      int        `json:"files_failed"`
	BatchesCompleted int        `json:"batches_completed"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	Error            string     `json:"error,omitempty"`
}
