package cache

import (
	"errors"
	"fmt"
)

// ErrMelodyNotFound matches any *NotFoundError via errors.Is.
var ErrMelodyNotFound = errors.New("melody not found")

// NotFoundError reports a reference that is neither a known melody id, an
// http(s) URL, nor an existing file.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("audio file not found: %s", e.Ref)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrMelodyNotFound }

// DownloadError reports a failed fetch. Status is set for non-2xx responses,
// Err for transport failures.
type DownloadError struct {
	URL    string
	Status int
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to download %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
