// Package session holds the client's authentication state: a token, a role
// tag, and an opportunistically cached organizer id, persisted to a JSON file
// between runs. The store is the single owner of that state; the gateway and
// the router read it through Current, and components that must react to a
// change (logout, forced 401 clear) register with Subscribe instead of
// re-reading storage ad hoc.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/pkg/metrics"
)

const sessionFilePermission = 0o600

// Listener is notified with the new session after every change.
type Listener func(model.Session)

// Store persists and publishes the current session. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	path      string
	current   model.Session
	loaded    bool
	listeners []Listener
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithPath sets the session file location.
func WithPath(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.path = path
		}
	}
}

// NewStore creates a session store. The file is read lazily on first access;
// a missing or unreadable file simply means no session.
func NewStore(opts ...Option) *Store {
	s := &Store{path: "session.json"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the session as of now, loading the file on first call.
func (s *Store) Current() model.Session {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.current
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.current = s.readFile()
		s.loaded = true
	}
	return s.current
}

// Set replaces the token and role together and persists the result.
func (s *Store) Set(token string, role model.Role) error {
	s.mu.Lock()
	s.current = model.Session{Token: token, Role: role}
	s.loaded = true
	err := s.writeFile()
	next := s.current
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	metrics.RecordSessionChange()
	notify(listeners, next)
	return err
}

// SetOrganizerID caches the organizer profile id alongside the session.
// A no-op when no session is present.
func (s *Store) SetOrganizerID(id int) error {
	s.mu.Lock()
	if !s.loaded {
		s.current = s.readFile()
		s.loaded = true
	}
	if s.current.Token == "" {
		s.mu.Unlock()
		return nil
	}
	s.current.OrganizerID = id
	err := s.writeFile()
	next := s.current
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	notify(listeners, next)
	return err
}

// Clear destroys the session, on logout or on a 401 from any request.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.current = model.Session{}
	s.loaded = true
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		err = nil
	}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	metrics.RecordSessionClear()
	notify(listeners, model.Session{})
	return err
}

// Subscribe registers a listener invoked after every session change.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func notify(listeners []Listener, next model.Session) {
	for _, fn := range listeners {
		fn(next)
	}
}

func (s *Store) readFile() model.Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.Session{}
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return model.Session{}
	}
	if sess.Token == "" {
		// Role without token is meaningless; drop both.
		return model.Session{}
	}
	return sess
}

func (s *Store) writeFile() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: %w", ErrPersist, err)
		}
	}
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := os.WriteFile(s.path, data, sessionFilePermission); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
