package festfusion_errors

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrInvalidTransition     = errors.New("invalid draft state transition")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidCategory       = errors.New("district is not in the allowed set")
	ErrUnsupportedType       = errors.New("file type not allowed")
	ErrEmptyFile             = errors.New("file is empty")
	ErrTooLarge              = errors.New("file too large")
	ErrRateLimited           = errors.New("rate limited")
	ErrLocalStorage          = errors.New("local storage failure")
	ErrRemoteArchival        = errors.New("remote archival failure")
	ErrRecordAppend          = errors.New("record append failure")
	ErrSummarization         = errors.New("summarization failure")
	ErrCredentialUnavailable = errors.New("google credentials unavailable")
	ErrServiceUnavailable    = errors.New("service unavailable")
	ErrDraftExpired          = errors.New("submission draft expired")
)

// NowPtr returns a pointer to current time
func NowPtr() *time.Time {
	now := time.Now()
	return &now
}
