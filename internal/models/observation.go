package models

import "time"

// Observation is the extracted content of one fetch cycle plus its fingerprint.
type Observation struct {
	Content     string
	Fingerprint string
	FetchedAt   time.Time
}

// SameAs reports whether two observations carry identical content.
// Only fingerprints are compared.
func (o *Observation) SameAs(other *Observation) bool {
	if o == nil || other == nil {
		return false
	}
	return o.Fingerprint == other.Fingerprint
}

// WatchState is the mutable state of a single running watch. It is never persisted.
type WatchState struct {
	Previous          *Observation
	ConsecutiveErrors int
}

// NotificationDecision is the outcome of comparing two observations.
type NotificationDecision struct {
	Notify  bool
	Payload string
}

// NoNotification is the decision for unchanged or first observations.
func NoNotification() NotificationDecision {
	return NotificationDecision{}
}

// NotifyWith builds a decision that requests delivery of payload.
func NotifyWith(payload string) NotificationDecision {
	return NotificationDecision{Notify: true, Payload: payload}
}
