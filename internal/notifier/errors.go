package notifier

import "fmt"

// NotifyError is a failed delivery. It is reported, never retried.
type NotifyError struct {
	Channel string
	Target  string
	Err     error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("%s notification to '%s' failed: %v", e.Channel, e.Target, e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}
