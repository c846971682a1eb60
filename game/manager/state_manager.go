package manager

import (
	"fmt"
	"time"
)

// GrowthMilestone is the chain length step at which growth gets logged.
const GrowthMilestone = 10

// SessionStats is an in-memory record of one run. Nothing here is shown
// to the player or written to disk.
type SessionStats struct {
	UUID       string
	StartTime  time.Time
	Frames     int
	Meals      int
	Length     int
	PeakLength int
}

func (s SessionStats) String() string {
	return fmt.Sprintf("session %s: %d frames, %d meals, length %d (peak %d)",
		s.UUID, s.Frames, s.Meals, s.Length, s.PeakLength)
}

type StateManager struct {
	stats SessionStats
}

func NewStateManager(id string, startTime time.Time, length int) *StateManager {
	return &StateManager{
		stats: SessionStats{
			UUID:       id,
			StartTime:  startTime,
			Length:     length,
			PeakLength: length,
		},
	}
}

func (sm *StateManager) RecordFrame() {
	sm.stats.Frames++
}

// RecordMeal stores the chain length after a consumption and reports
// whether it crossed a growth milestone.
func (sm *StateManager) RecordMeal(length int) bool {
	sm.stats.Meals++
	sm.stats.Length = length
	if length > sm.stats.PeakLength {
		sm.stats.PeakLength = length
	}
	return length%GrowthMilestone == 0
}

func (sm *StateManager) Snapshot() SessionStats {
	return sm.stats
}
