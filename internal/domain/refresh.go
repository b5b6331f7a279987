package domain

import "time"

// RefreshStats holds statistics about one remote -> cache refresh.
type RefreshStats struct {
	Source              string
	Fetched             int
	Stored              int
	PreservedDownloaded int
	Duration            time.Duration
}

// RefreshState is the persisted bookkeeping of past refreshes.
type RefreshState struct {
	Source          string    `json:"source" db:"source"`
	LastRefreshedAt time.Time `json:"last_refreshed_at" db:"last_refreshed_at"`
	TotalRefreshed  int64     `json:"total_refreshed" db:"total_refreshed"`
}
