package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

type recordingAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recordingAuditRepo) Insert(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditRepo) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEvent(nil), r.events...)
}

func TestAuditDispatcher_PersistsEvents(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewAuditDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuditEvent{Kind: domain.AuditLoginFailed, Subject: "ana@example.com"})
	d.Record(domain.AuditEvent{Kind: domain.AuditUserRegistered, Subject: "u1"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(repo.snapshot()) == 2 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected 2 persisted events, got %d", len(repo.snapshot()))
}

func TestAuditDispatcher_SameSubjectSameWorker(t *testing.T) {
	d := NewAuditDispatcher(8, &recordingAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("ana@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("ana@example.com"); got != first {
			t.Fatalf("shard index not stable: %d then %d", first, got)
		}
	}
}

func TestAuditDispatcher_RecordNeverBlocks(t *testing.T) {
	// Workers are not started, so buffers fill up; Record must still return.
	d := NewAuditDispatcher(1, &recordingAuditRepo{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(domain.AuditEvent{Kind: domain.AuditLoginFailed, Subject: "same"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full queue")
	}
}
