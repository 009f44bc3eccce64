package monitor

import (
	"fmt"
	"time"
)

// CycleStats summarises what a watch has done so far.
type CycleStats struct {
	Cycles        int
	Changes       int
	Failures      int
	Notifications int
}

// CycleTracker numbers watch cycles and counts their outcomes. It is owned by
// the watch loop and is not safe for concurrent use.
type CycleTracker struct {
	currentCycleID string
	stats          CycleStats
}

// NewCycleTracker creates a new CycleTracker
func NewCycleTracker() *CycleTracker {
	return &CycleTracker{}
}

// StartCycle begins a new cycle, increments the counter, and sets a new ID.
func (ct *CycleTracker) StartCycle(now time.Time) string {
	ct.stats.Cycles++
	ct.currentCycleID = fmt.Sprintf("watch-%s-%d", now.Format("20060102-150405"), ct.stats.Cycles)
	return ct.currentCycleID
}

// GetCurrentCycleID returns the current cycle ID
func (ct *CycleTracker) GetCurrentCycleID() string {
	return ct.currentCycleID
}

func (ct *CycleTracker) RecordChange() {
	ct.stats.Changes++
}

func (ct *CycleTracker) RecordFailure() {
	ct.stats.Failures++
}

func (ct *CycleTracker) RecordNotification() {
	ct.stats.Notifications++
}

// Stats returns a copy of the counters.
func (ct *CycleTracker) Stats() CycleStats {
	return ct.stats
}
