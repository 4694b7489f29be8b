package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingAuditRepo) Record(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *recordingAuditRepo) snapshot() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func waitForEntries(t *testing.T, repo *recordingAuditRepo, want int) []domain.AuditEntry {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got := repo.snapshot()
		if len(got) >= want {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d entries, got %d", want, len(repo.snapshot()))
	return nil
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuditEntry{BookID: "b1", Action: domain.AuditBookCreated, Actor: "admin"})
	d.Enqueue(domain.AuditEntry{BookID: "b2", Action: domain.AuditStockUpdated, Actor: "admin"})

	got := waitForEntries(t, repo, 2)

	actions := map[string]bool{}
	for _, e := range got {
		actions[e.Action] = true
	}
	if !actions[domain.AuditBookCreated] || !actions[domain.AuditStockUpdated] {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

// Entries for the same book hash to the same worker, so their relative order
// must survive.
func TestDispatcher_PerBookOrdering(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{
		domain.AuditBookCreated,
		domain.AuditStockUpdated,
		domain.AuditRecommendationSet,
		domain.AuditFeedbackAdded,
		domain.AuditBookDeleted,
	}
	for _, a := range actions {
		d.Enqueue(domain.AuditEntry{BookID: "same-book", Action: a, Actor: "admin"})
	}

	got := waitForEntries(t, repo, len(actions))
	for i, e := range got {
		if e.Action != actions[i] {
			t.Fatalf("order broken at %d: want %s, got %s", i, actions[i], e.Action)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("64f0c2a9e1b2c3d4e5f60718")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("64f0c2a9e1b2c3d4e5f60718"); got != first {
			t.Fatalf("shard index not deterministic: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

// The dispatcher lifecycle is independent of the server's signal context:
// entries produced by requests completing during shutdown still get written
// as long as the dispatcher's own context is alive.
func TestDispatcher_DrainsWhileServerContextCancelled(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	dispatcherCtx, stop := context.WithCancel(context.Background())
	defer stop()
	d.Start(dispatcherCtx)

	serverCtx, shutdown := context.WithCancel(context.Background())
	shutdown()
	<-serverCtx.Done()

	d.Enqueue(domain.AuditEntry{BookID: "b1", Action: domain.AuditStockUpdated, Actor: "admin"})
	got := waitForEntries(t, repo, 1)
	if got[0].Action != domain.AuditStockUpdated {
		t.Fatalf("unexpected entry: %+v", got[0])
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(domain.AuditEntry{BookID: "b1", Action: domain.AuditBookCreated, Actor: "admin"})
	waitForEntries(t, repo, 1)

	cancel()
	// Give workers a moment to observe cancellation, then verify later
	// enqueues are no longer consumed.
	time.Sleep(20 * time.Millisecond)
	d.Enqueue(domain.AuditEntry{BookID: "b1", Action: domain.AuditBookDeleted, Actor: "admin"})
	time.Sleep(50 * time.Millisecond)

	if got := repo.snapshot(); len(got) != 1 {
		t.Fatalf("worker consumed entry after cancellation: %+v", got)
	}
}
