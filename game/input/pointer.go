package input

import (
	"sync"

	"centipede/game/types"
)

// Source provides the steering target, read once per tick.
type Source interface {
	CurrentPosition() types.Point
}

// Tracker records the latest pointer coordinates. Backends write it from
// their input handling (possibly another goroutine), the creature reads it.
type Tracker struct {
	mu  sync.RWMutex
	pos types.Point
}

func NewTracker(start types.Point) *Tracker {
	return &Tracker{pos: start}
}

// Set stores the newest pointer position
func (t *Tracker) Set(p types.Point) {
	t.mu.Lock()
	t.pos = p
	t.mu.Unlock()
}

func (t *Tracker) CurrentPosition() types.Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pos
}

// Fixed is a Source that never moves.
type Fixed types.Point

func (f Fixed) CurrentPosition() types.Point {
	return types.Point(f)
}
