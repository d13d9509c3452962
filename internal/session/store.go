// Package session keeps one upstream API client per browser session and
// drops a session as soon as the upstream API reports it unauthorized.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/vaultpass-web/internal/apiclient"
	"github.com/vaultpass/vaultpass-web/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is a browser session bound to its own upstream client and cookie jar.
type Session struct {
	ID        string
	Client    *apiclient.Client
	CreatedAt time.Time

	mu   sync.RWMutex
	user model.User
}

// User returns the profile cached at login.
func (s *Session) User() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser caches the profile of the logged-in user.
func (s *Session) SetUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Store holds sessions in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	baseURL  string
	bus      *apiclient.LogoutBus
	ttl      time.Duration
	now      func() time.Time
	unsub    func()
}

// NewStore creates a Store whose sessions talk to baseURL and expire after ttl.
// It subscribes to bus and removes a session when its client receives a 401.
func NewStore(bus *apiclient.LogoutBus, baseURL string, ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		baseURL:  baseURL,
		bus:      bus,
		ttl:      ttl,
		now:      time.Now,
	}
	s.unsub = bus.Subscribe(s.handleLogout)
	return s
}

// Create starts a new anonymous session with a fresh upstream client.
func (s *Store) Create() (*Session, error) {
	id := uuid.NewString()
	client, err := apiclient.New(s.baseURL, apiclient.WithName(id), apiclient.WithLogoutBus(s.bus))
	if err != nil {
		return nil, err
	}

	sess := &Session{ID: id, Client: client, CreatedAt: s.now()}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get returns a live session by ID.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of stored sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var n int
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Close detaches the store from the logout bus.
func (s *Store) Close() {
	s.unsub()
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.CreatedAt) > s.ttl
}

func (s *Store) handleLogout(ev apiclient.LogoutEvent) {
	s.mu.Lock()
	_, ok := s.sessions[ev.Client]
	delete(s.sessions, ev.Client)
	s.mu.Unlock()

	if ok {
		slog.Info("forced logout", "session", ev.Client, "method", ev.Method, "path", ev.Path, "reason", ev.Message)
	}
}
