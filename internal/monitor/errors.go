package monitor

import "fmt"

// FetchError wraps any failure to obtain content for a locator.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch '%s': %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// TerminationError is returned by Watcher.Run once consecutive failures exceed the threshold.
type TerminationError struct {
	URL               string
	ConsecutiveErrors int
	Err               error
}

func (e *TerminationError) Error() string {
	return fmt.Sprintf("watch of '%s' terminated after %d consecutive errors: %v", e.URL, e.ConsecutiveErrors, e.Err)
}

func (e *TerminationError) Unwrap() error {
	return e.Err
}
