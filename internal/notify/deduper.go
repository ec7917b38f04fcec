// Package notify tracks which one-shot notifications already fired.
package notify

import (
	"fmt"
	"sync"
	"time"
)

// Deduper remembers which (kind, day) pairs already fired so popups like
// level-ups and streak toasts appear once per calendar day, however many
// sessions the learner opens.
type Deduper struct {
	mu    sync.Mutex
	fired map[string]bool
}

func NewDeduper() *Deduper {
	return &Deduper{fired: make(map[string]bool)}
}

// FirstToday marks the (kind, day) pair and reports whether this call was
// the first for it.
func (d *Deduper) FirstToday(kind string, day time.Time) bool {
	key := fmt.Sprintf("%s:%s", kind, day.Format(time.DateOnly))
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fired[key] {
		return false
	}
	d.fired[key] = true
	return true
}
