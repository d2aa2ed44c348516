// Package session keeps one weather.Session per browser, in memory only.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-search/internal/services/weather"
	"weather-search/pkg/logger"
)

// Factory builds a session for a freshly issued id.
type Factory func(id string) *weather.Session

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*weather.Session
	factory  Factory
	ttl      time.Duration
	now      func() time.Time
	l        *logger.Logger
}

func NewStore(factory Factory, ttl time.Duration, l *logger.Logger) *Store {
	return &Store{
		sessions: make(map[string]*weather.Session),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		l:        l,
	}
}

// Get returns the session for id and marks it as seen.
func (s *Store) Get(id string) (*weather.Session, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		sess.Touch(s.now())
	}
	return sess, ok
}

// Create registers a new session and starts its default-city fetch.
func (s *Store) Create() *weather.Session {
	id := uuid.NewString()
	sess := s.factory(id)
	sess.Touch(s.now())

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	sess.Start()

	s.l.Debug("session created", map[string]any{"session": id})

	return sess
}

// GetOrCreate returns the session for id, or a new one when id is unknown or
// expired.
func (s *Store) GetOrCreate(id string) (sess *weather.Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(), true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Sweep closes and forgets sessions idle for longer than the TTL. It returns
// how many were evicted.
func (s *Store) Sweep(now time.Time) int {
	var expired []*weather.Session

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen()) > s.ttl {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}

	if len(expired) > 0 {
		s.l.Info("evicted idle sessions", map[string]any{
			"evicted":   len(expired),
			"remaining": s.Len(),
		})
	}

	return len(expired)
}

// Close shuts every session down.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*weather.Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
