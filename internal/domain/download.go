package domain

import "time"

type BatchState string

const (
	BatchIdle      BatchState = "idle"
	BatchRunning   BatchState = "running"
	BatchCompleted BatchState = "completed"
	BatchFailed    BatchState = "failed"
	BatchCancelled BatchState = "cancelled"
)

// Terminal reports whether the state ends a batch.
func (s BatchState) Terminal() bool {
	return s == BatchCompleted || s == BatchFailed || s == BatchCancelled
}

// DownloadBatch is one run of the download coordinator over a list of ids.
type DownloadBatch struct {
	ID             string     `json:"id,omitempty"`
	IDs            []string   `json:"ids,omitempty"`
	CompletedCount int        `json:"completed"`
	TotalCount     int        `json:"total"`
	State          BatchState `json:"state"`
	// Skipped lists ids that were not in the cache when their turn came.
	Skipped    []string  `json:"skipped,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

type EventType string

const (
	EventStarted   EventType = "started"
	EventProgress  EventType = "progress"
	EventCompleted EventType = "completed"
	EventFailed    EventType = "failed"
	EventCancelled EventType = "cancelled"
)

// DownloadEvent is broadcast to observers and progress sinks on every batch
// transition and after each downloaded item.
type DownloadEvent struct {
	Type      EventType  `json:"type"`
	BatchID   string     `json:"batch_id"`
	Completed int        `json:"completed"`
	Total     int        `json:"total"`
	State     BatchState `json:"state"`
	Message   string     `json:"message,omitempty"`
	At        time.Time  `json:"at"`
}

// Progress is the (completed, total) pair shown while a batch runs.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
