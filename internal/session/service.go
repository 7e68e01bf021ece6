package session

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("session not found")

// Service is the concurrency boundary around sessions. It guards the
// registry with its own mutex and serializes all work on one session
// behind a per-session mutex, so the HTTP handlers and the WebSocket
// pump never touch a session at the same time.
type Service struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	sess *Session
}

func NewService() *Service {
	return &Service{entries: make(map[string]*entry)}
}

// State is the queryable snapshot of a session.
type State struct {
	ID                string `json:"id"`
	ObjectCount       int    `json:"objectCount"`
	CanUndo           bool   `json:"canUndo"`
	CanRedo           bool   `json:"canRedo"`
	HasPendingPreview bool   `json:"hasPendingPreview"`
}

// Create registers a fresh session and returns its ID.
func (s *Service) Create() string {
	sess := New()

	s.mu.Lock()
	s.entries[sess.ID()] = &entry{sess: sess}
	s.mu.Unlock()

	return sess.ID()
}

// With runs fn with exclusive access to the session.
func (s *Service) With(id string, fn func(*Session) error) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}

// Delete removes the session from the registry. Work already holding
// the session finishes on the detached entry.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

// State snapshots the session's queryable state.
func (s *Service) State(id string) (*State, error) {
	var st *State
	err := s.With(id, func(sess *Session) error {
		st = Snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Snapshot builds a State from a session the caller already holds.
func Snapshot(sess *Session) *State {
	return &State{
		ID:                sess.ID(),
		ObjectCount:       sess.ObjectCount(),
		CanUndo:           sess.CanUndo(),
		CanRedo:           sess.CanRedo(),
		HasPendingPreview: sess.HasPendingPreview(),
	}
}
