package notifier

import "fmt"

// FormatErrorMessage builds the payload sent when a fetch fails.
func FormatErrorMessage(locator string, terminating bool) string {
	msg := fmt.Sprintf("Siteeagle for '%s' had an error.", locator)
	if terminating {
		return TerminatingPrefix + msg
	}
	return msg
}
