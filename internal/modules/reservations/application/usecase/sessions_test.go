package usecase

import (
	"errors"
	"testing"
	"time"

	menu "dinesync/internal/modules/menu/domain"
	"dinesync/internal/modules/reservations/application/port"
	"dinesync/internal/modules/reservations/domain"
	"dinesync/internal/platform/scheduler"
)

func newTestSessions(clock *scheduler.Manual, notifiers NotifierFactory) *Sessions {
	return NewSessions(FlowDeps{
		Catalog:     menu.NewDefaultCatalog(),
		Scheduler:   clock,
		SubmitDelay: testSubmitDelay,
		ClearDelay:  testClearDelay,
	}, notifiers)
}

func TestSessionsLifecycle(t *testing.T) {
	clock := scheduler.NewManual(flowStart)
	perSession := map[string]*recordingNotifier{}
	sessions := newTestSessions(clock, func(id string) port.Notifier {
		n := &recordingNotifier{}
		perSession[id] = n
		return n
	})

	first := sessions.Create()
	second := sessions.Create()
	if first.ID() == second.ID() {
		t.Fatal("expected distinct session ids")
	}
	if sessions.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", sessions.Len())
	}

	got, err := sessions.Get(first.ID())
	if err != nil || got != first {
		t.Fatalf("expected to resolve the first flow, got %v %v", got, err)
	}

	if err := first.Submit(); err == nil {
		t.Fatal("expected validation failure on empty draft")
	}
	if perSession[first.ID()].count() != 1 || perSession[second.ID()].count() != 0 {
		t.Fatal("expected notifications routed to the owning session only")
	}

	if err := sessions.Close(first.ID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sessions.Get(first.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := sessions.Close(first.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on double close, got %v", err)
	}
	if err := first.SetField(domain.FieldName, "Ada"); !errors.Is(err, ErrFlowClosed) {
		t.Fatalf("expected closed flow, got %v", err)
	}
}

func TestSessionsExpire(t *testing.T) {
	clock := scheduler.NewManual(flowStart)
	sessions := newTestSessions(clock, nil)

	old := sessions.Create()
	clock.Advance(2 * time.Hour)
	fresh := sessions.Create()

	if n := sessions.Expire(time.Hour); n != 1 {
		t.Fatalf("expected 1 expired session, got %d", n)
	}
	if _, err := sessions.Get(old.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected the old session gone, got %v", err)
	}
	if _, err := sessions.Get(fresh.ID()); err != nil {
		t.Fatalf("expected the fresh session kept, got %v", err)
	}
}

func TestSessionsCloseAllCancelsPendingWork(t *testing.T) {
	clock := scheduler.NewManual(flowStart)
	sessions := newTestSessions(clock, nil)
	flow := sessions.Create()
	if err := flow.SetFields(map[domain.Field]string{
		domain.FieldName:  "Ada",
		domain.FieldEmail: "a@b.co",
		domain.FieldPhone: "5551234567",
		domain.FieldDate:  "2026-10-15",
		domain.FieldTime:  "1:00 PM",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := flow.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessions.CloseAll()
	if sessions.Len() != 0 {
		t.Fatalf("expected no sessions, got %d", sessions.Len())
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected pending submit cancelled, got %d", clock.Pending())
	}
}
