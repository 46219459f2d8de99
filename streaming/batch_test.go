package streaming

import (
	"errors"
	"testing"

	"github.com/automoto/photowall/shared/viewmath"
)

func batchedOptions() Options {
	return Options{
		PreloadMargin: 5,
		EvictMargin:   20,
		MaxConcurrent: 4,
		FadeDuration:  1.0,
		Batched:       true,
		BatchSize:     3,
		SettleDelay:   0.1,
	}
}

// trackRow registers n photos laid out inside viewNear.
func trackRow(m *Manager, n int) {
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		m.Track(id, viewmath.NewRect(float64(i*12), 10, 10, 10), "u/"+id)
	}
}

func TestBatchSizeLimitsFirstWave(t *testing.T) {
	l := newFakeLoader()
	m := NewManager(l, batchedOptions())
	trackRow(m, 5)

	m.Tick(viewNear, 0)

	if len(l.requests) != 3 {
		t.Fatalf("got %d requests, want batch of 3", len(l.requests))
	}
	if s := m.Stats(); s.Queued != 2 {
		t.Errorf("queued = %d, want 2 waiting for the next batch", s.Queued)
	}
}

func TestBatchQuorumAndSettle(t *testing.T) {
	l := newFakeLoader()
	m := NewManager(l, batchedOptions())
	trackRow(m, 4)

	m.Tick(viewNear, 0) // batch of a, b, c starts; d queued
	if len(l.requests) != 3 {
		t.Fatalf("got %d requests, want 3", len(l.requests))
	}

	// One member fails outright, two succeed and start fading.
	l.fail(0, errors.New("boom"))
	l.succeed(1)
	l.succeed(2)
	m.Tick(viewNear, 0)

	// Successes are still fading, so the batch is locked.
	if len(l.requests) != 3 {
		t.Fatal("next batch started before the fades finished")
	}

	// Fades finish; quorum unlocks but the settle delay holds the next batch.
	m.Tick(viewNear, 1.5)
	if len(l.requests) != 3 {
		t.Fatal("next batch started without waiting out the settle delay")
	}
	m.Tick(viewNear, 0.05)
	if len(l.requests) != 3 {
		t.Fatal("next batch started while the settle delay was still counting")
	}

	m.Tick(viewNear, 0.06)
	if len(l.requests) != 4 || l.requests[3].ID != "d" {
		t.Fatalf("requests = %v, want d issued after the settle delay", l.requests)
	}
}

func TestBatchFailureCannotBlockQuorum(t *testing.T) {
	l := newFakeLoader()
	m := NewManager(l, batchedOptions())
	trackRow(m, 4)

	m.Tick(viewNear, 0)
	// Every member of the first batch fails.
	for i := 0; i < 3; i++ {
		l.fail(i, errors.New("boom"))
	}
	m.Tick(viewNear, 0)   // failures applied, quorum reached with no fades
	m.Tick(viewNear, 0.2) // settle delay passes

	if len(l.requests) != 4 {
		t.Errorf("got %d requests, want the next batch after an all-failure batch", len(l.requests))
	}
}

func TestBatchEnqueueOnlyOnVisibilityEnter(t *testing.T) {
	l := newFakeLoader()
	m := NewManager(l, batchedOptions())
	trackRow(m, 4)

	m.Tick(viewNear, 0)
	queued := m.Stats().Queued

	// Staying visible is not an enter event; nothing is re-queued.
	m.Tick(viewNear, 0)
	m.Tick(viewNear, 0)
	if got := m.Stats().Queued; got != queued {
		t.Errorf("queued = %d after repeat ticks, want %d", got, queued)
	}
	if len(l.requests) != 3 {
		t.Errorf("got %d requests, want the active batch only", len(l.requests))
	}
}

func TestActiveBatchMemberSurvivesEviction(t *testing.T) {
	l := newFakeLoader()
	m := NewManager(l, batchedOptions())
	trackRow(m, 2)

	m.Tick(viewNear, 0) // batch of a, b
	h := l.succeed(0)   // a loads and starts fading; b still in flight
	m.Tick(viewNear, 0)

	// The camera jumps away mid-batch. a is loaded and far outside the
	// eviction margin, but evicting it would reset the fade the quorum is
	// waiting on.
	m.Tick(viewAway, 0)

	if v, _ := m.ViewOf("a"); v.State != Loaded {
		t.Errorf("state = %v, want loaded while its batch is active", v.State)
	}
	if h.disposed {
		t.Error("active batch member must not be disposed")
	}
}
