// Package session keeps server-side calculator states, one per client, so a
// thin front end can forward key labels without holding state itself.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"keypad-calc/internal/calculator"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrCapacity = errors.New("session limit reached")
)

// Session is a snapshot of one stored calculator.
type Session struct {
	ID        string           `json:"id"`
	State     calculator.State `json:"state"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type entry struct {
	state   calculator.State
	touched time.Time
}

// Store is an in-memory session table. Sessions idle for longer than the
// TTL are dropped the next time they are looked up or a session is created.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewStore returns an empty store holding at most maxSessions sessions.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		max:      maxSessions,
		now:      time.Now,
	}
}

// Create starts a session at the calculator's initial state.
func (s *Store) Create(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpiredLocked(ctx, now)

	if len(s.sessions) >= s.max {
		return Session{}, ErrCapacity
	}

	id := uuid.NewString()
	e := &entry{state: calculator.Initial(), touched: now}
	s.sessions[id] = e
	activeSessions.Add(ctx, 1)

	return snapshot(id, e), nil
}

// Get returns the current state of a session.
func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookupLocked(ctx, id, s.now())
	if err != nil {
		return Session{}, err
	}
	return snapshot(id, e), nil
}

// Update replaces a session's state with fn applied to it. fn runs with the
// store locked, so presses on one session are applied one at a time.
func (s *Store) Update(ctx context.Context, id string, fn func(calculator.State) calculator.State) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, err := s.lookupLocked(ctx, id, now)
	if err != nil {
		return Session{}, err
	}

	e.state = fn(e.state)
	e.touched = now
	return snapshot(id, e), nil
}

// Press applies one key label to a session.
func (s *Store) Press(ctx context.Context, id, label string) (Session, error) {
	return s.Update(ctx, id, func(st calculator.State) calculator.State {
		return calculator.Apply(ctx, st, label)
	})
}

// Reset returns a session to the initial state.
func (s *Store) Reset(ctx context.Context, id string) (Session, error) {
	return s.Press(ctx, id, calculator.LabelClear)
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupLocked(ctx, id, s.now()); err != nil {
		return err
	}
	delete(s.sessions, id)
	activeSessions.Add(ctx, -1)
	return nil
}

// Len returns the number of stored sessions, expired ones included until
// they are evicted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) lookupLocked(ctx context.Context, id string, now time.Time) (*entry, error) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(e, now) {
		delete(s.sessions, id)
		activeSessions.Add(ctx, -1)
		evictedSessions.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "lookup")))
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *Store) evictExpiredLocked(ctx context.Context, now time.Time) {
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
			activeSessions.Add(ctx, -1)
			evictedSessions.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "sweep")))
		}
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return now.Sub(e.touched) > s.ttl
}

func snapshot(id string, e *entry) Session {
	return Session{ID: id, State: e.state, UpdatedAt: e.touched}
}
