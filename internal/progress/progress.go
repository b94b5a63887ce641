package progress

import (
	"fmt"
	"sync"
	"time"
)

// Phase represents the current phase of a scan
type Phase string

const (
	PhaseCollecting Phase = "collecting"
	PhaseStatistics Phase = "statistics"
	PhaseDuplicates Phase = "duplicates"
	PhaseScoring    Phase = "scoring"
	PhaseComplete   Phase = "complete"
)

// Update represents a scan progress update
type Update struct {
	Phase      Phase
	Percent    int
	FilesFound int
	TotalSize  int64
	StartTime  time.Time
}

// Reporter provides thread-safe progress reporting with non-blocking
// listener channels.
type Reporter struct {
	mu        sync.RWMutex
	last      Update
	listeners []chan Update
}

// NewReporter creates a new progress reporter
func NewReporter() *Reporter {
	return &Reporter{
		listeners: make([]chan Update, 0),
		last:      Update{StartTime: time.Now()},
	}
}

// Subscribe returns a channel that receives progress updates
func (r *Reporter) Subscribe() <-chan Update {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan Update, 16)
	r.listeners = append(r.listeners, ch)
	return ch
}

// Unsubscribe closes and removes a listener channel
func (r *Reporter) Unsubscribe(ch <-chan Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, listener := range r.listeners {
		if listener == ch {
			close(listener)
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Publish records an update and notifies all listeners without blocking
func (r *Reporter) Publish(update Update) {
	r.mu.Lock()
	if update.StartTime.IsZero() {
		update.StartTime = r.last.StartTime
	}
	r.last = update
	listeners := make([]chan Update, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		select {
		case listener <- update:
		default:
			// Skip if channel is full
		}
	}
}

// Last returns the most recent update
func (r *Reporter) Last() Update {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// PercentFunc adapts the reporter to the advisor's percent callback.
// Percentages below the last published value are dropped so listeners
// always observe a non-decreasing sequence.
func (r *Reporter) PercentFunc() func(int) {
	return func(percent int) {
		last := r.Last()
		if percent < last.Percent {
			return
		}

		phase := last.Phase
		switch {
		case percent >= 100:
			phase = PhaseComplete
		case percent >= 50:
			phase = PhaseScoring
		case percent >= 30:
			phase = PhaseDuplicates
		case percent >= 20:
			phase = PhaseStatistics
		default:
			phase = PhaseCollecting
		}

		r.Publish(Update{
			Phase:      phase,
			Percent:    percent,
			FilesFound: last.FilesFound,
			TotalSize:  last.TotalSize,
			StartTime:  last.StartTime,
		})
	}
}

// Format returns a human-readable progress string
func Format(u Update) string {
	elapsed := time.Since(u.StartTime).Round(time.Second)

	switch u.Phase {
	case PhaseComplete:
		return fmt.Sprintf("Scan complete in %s", elapsed)
	case "":
		return "Initializing..."
	default:
		return fmt.Sprintf("%s... %d%% [%s]", u.Phase, u.Percent, elapsed)
	}
}
