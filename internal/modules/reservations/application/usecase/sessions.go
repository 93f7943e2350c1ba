package usecase

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"dinesync/internal/modules/reservations/application/port"
)

var ErrSessionNotFound = errors.New("reservation session not found")

// NotifierFactory builds the toast sink of a new session.
type NotifierFactory func(sessionID string) port.Notifier

// Sessions owns every live flow, one per browser session.
type Sessions struct {
	deps      FlowDeps
	notifiers NotifierFactory

	mu      sync.RWMutex
	flows   map[string]*Flow
	created map[string]time.Time
}

// NewSessions creates flows with deps. When notifiers is set it overrides
// deps.Notifier per session.
func NewSessions(deps FlowDeps, notifiers NotifierFactory) *Sessions {
	return &Sessions{
		deps:      deps,
		notifiers: notifiers,
		flows:     make(map[string]*Flow),
		created:   make(map[string]time.Time),
	}
}

// Create starts a new flow in Editing under a fresh session id.
func (s *Sessions) Create() *Flow {
	id := uuid.NewString()
	deps := s.deps
	if s.notifiers != nil {
		deps.Notifier = s.notifiers(id)
	}
	flow := NewFlow(id, deps)

	s.mu.Lock()
	s.flows[id] = flow
	s.created[id] = s.deps.Scheduler.Now()
	s.mu.Unlock()

	if deps.Logger != nil {
		deps.Logger.Info("reservation session created", slog.String("sessionId", id))
	}
	return flow
}

func (s *Sessions) Get(id string) (*Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flow, ok := s.flows[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return flow, nil
}

// Has reports whether the session is live.
func (s *Sessions) Has(id string) bool {
	_, err := s.Get(id)
	return err == nil
}

// Close tears the flow down and forgets it.
func (s *Sessions) Close(id string) error {
	s.mu.Lock()
	flow, ok := s.flows[id]
	delete(s.flows, id)
	delete(s.created, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	flow.Close()
	return nil
}

// Expire closes every flow created more than maxAge ago and returns how many were
// closed.
func (s *Sessions) Expire(maxAge time.Duration) int {
	cutoff := s.deps.Scheduler.Now().Add(-maxAge)

	s.mu.Lock()
	var expired []*Flow
	for id, createdAt := range s.created {
		if createdAt.Before(cutoff) {
			expired = append(expired, s.flows[id])
			delete(s.flows, id)
			delete(s.created, id)
		}
	}
	s.mu.Unlock()

	for _, flow := range expired {
		flow.Close()
	}
	return len(expired)
}

// CloseAll tears every flow down. Used on shutdown.
func (s *Sessions) CloseAll() {
	s.mu.Lock()
	flows := s.flows
	s.flows = make(map[string]*Flow)
	s.created = make(map[string]time.Time)
	s.mu.Unlock()

	for _, flow := range flows {
		flow.Close()
	}
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}
