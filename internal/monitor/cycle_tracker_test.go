package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCycleTracker_Basic(t *testing.T) {
	ct := NewCycleTracker()
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	id := ct.StartCycle(now)
	assert.Equal(t, "watch-20240506-070809-1", id)
	assert.Equal(t, id, ct.GetCurrentCycleID())

	ct.RecordChange()
	ct.RecordNotification()
	ct.StartCycle(now)
	ct.RecordFailure()
	ct.RecordNotification()

	assert.Equal(t, CycleStats{Cycles: 2, Changes: 1, Failures: 1, Notifications: 2}, ct.Stats())
	assert.Equal(t, "watch-20240506-070809-2", ct.GetCurrentCycleID())
}
