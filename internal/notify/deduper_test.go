package notify

import (
	"sync"
	"testing"
	"time"
)

func TestFirstToday(t *testing.T) {
	d := NewDeduper()
	day := time.Date(2026, 8, 21, 14, 30, 0, 0, time.UTC)

	if !d.FirstToday("level-up", day) {
		t.Error("first call should report true")
	}
	if d.FirstToday("level-up", day) {
		t.Error("second call same day should report false")
	}

	// A different hour of the same day is still the same day.
	later := day.Add(3 * time.Hour)
	if d.FirstToday("level-up", later) {
		t.Error("same calendar day should stay deduplicated")
	}
}

func TestFirstToday_KindsIndependent(t *testing.T) {
	d := NewDeduper()
	day := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	if !d.FirstToday("level-up", day) {
		t.Error("level-up should fire")
	}
	if !d.FirstToday("streak", day) {
		t.Error("a different kind should fire independently")
	}
}

func TestFirstToday_DayRollover(t *testing.T) {
	d := NewDeduper()
	day := time.Date(2026, 8, 21, 23, 59, 0, 0, time.UTC)

	if !d.FirstToday("streak", day) {
		t.Error("first day should fire")
	}
	if !d.FirstToday("streak", day.Add(2*time.Minute)) {
		t.Error("next calendar day should fire again")
	}
}

func TestFirstToday_Concurrent(t *testing.T) {
	d := NewDeduper()
	day := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	firsts := make(chan bool, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			firsts <- d.FirstToday("level-up", day)
		}()
	}
	wg.Wait()
	close(firsts)

	count := 0
	for first := range firsts {
		if first {
			count++
		}
	}
	if count != 1 {
		t.Errorf("exactly one caller should win, got %d", count)
	}
}
