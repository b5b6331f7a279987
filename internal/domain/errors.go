package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrRemoteRequest      = errors.New("remote request failed")

	ErrArticleNotFound = errors.New("article not found")
	ErrCacheWrite      = errors.New("cache write failed")
	ErrInvalidArticle  = errors.New("invalid article")
	ErrInvalidComment  = errors.New("invalid comment")

	ErrDownloadInProgress = errors.New("download already running")
	ErrNoActiveDownload   = errors.New("no active download")

	ErrNotAuthenticated = errors.New("not authenticated")
)

// RemoteError is a failed call to the news API. Message is meant for users.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("remote request failed: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote request failed: %s", e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool { return target == ErrRemoteRequest }
