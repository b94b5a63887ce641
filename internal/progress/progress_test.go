package progress

import (
	"strings"
	"testing"
	"time"
)

func drain(ch <-chan Update) []Update {
	var updates []Update
	for {
		select {
		case u := <-ch:
			updates = append(updates, u)
		default:
			return updates
		}
	}
}

func TestPublishAndLast(t *testing.T) {
	r := NewReporter()
	sub := r.Subscribe()

	r.Publish(Update{Phase: PhaseCollecting, Percent: 5, FilesFound: 10})

	got := drain(sub)
	if len(got) != 1 {
		t.Fatalf("received %d updates, want 1", len(got))
	}
	if got[0].Percent != 5 || got[0].FilesFound != 10 {
		t.Errorf("update = %+v", got[0])
	}

	last := r.Last()
	if last.Percent != 5 || last.Phase != PhaseCollecting {
		t.Errorf("Last() = %+v", last)
	}
}

func TestPublishNonBlocking(t *testing.T) {
	r := NewReporter()
	r.Subscribe() // never drained

	// More publishes than the channel buffer; must not deadlock
	for i := 0; i < 100; i++ {
		r.Publish(Update{Percent: i})
	}

	if r.Last().Percent != 99 {
		t.Errorf("Last().Percent = %d, want 99", r.Last().Percent)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	r := NewReporter()
	sub := r.Subscribe()
	r.Unsubscribe(sub)

	if _, ok := <-sub; ok {
		t.Error("channel still open after Unsubscribe")
	}

	// Publishing after removal must not panic
	r.Publish(Update{Percent: 50})
}

func TestPercentFuncDropsRegressions(t *testing.T) {
	r := NewReporter()
	sub := r.Subscribe()
	fn := r.PercentFunc()

	fn(30)
	fn(20) // stale, dropped
	fn(50)

	got := drain(sub)
	if len(got) != 2 {
		t.Fatalf("received %d updates, want 2: %+v", len(got), got)
	}
	if got[0].Percent != 30 || got[1].Percent != 50 {
		t.Errorf("percents = %d, %d, want 30, 50", got[0].Percent, got[1].Percent)
	}
}

func TestPercentFuncPhases(t *testing.T) {
	tests := []struct {
		percent int
		want    Phase
	}{
		{5, PhaseCollecting},
		{20, PhaseStatistics},
		{30, PhaseDuplicates},
		{50, PhaseScoring},
		{90, PhaseScoring},
		{100, PhaseComplete},
	}

	r := NewReporter()
	fn := r.PercentFunc()
	for _, tt := range tests {
		fn(tt.percent)
		if got := r.Last().Phase; got != tt.want {
			t.Errorf("phase at %d%% = %s, want %s", tt.percent, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	start := time.Now()

	if got := Format(Update{StartTime: start}); got != "Initializing..." {
		t.Errorf("empty phase = %q", got)
	}

	got := Format(Update{Phase: PhaseScoring, Percent: 70, StartTime: start})
	if !strings.Contains(got, "scoring") || !strings.Contains(got, "70%") {
		t.Errorf("scoring format = %q", got)
	}

	got = Format(Update{Phase: PhaseComplete, Percent: 100, StartTime: start})
	if !strings.Contains(got, "complete") {
		t.Errorf("complete format = %q", got)
	}
}
