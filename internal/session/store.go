// Package session keeps the live conversations in memory. Nothing is
// persisted; a session ends when it is deleted or idles past its TTL.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"benefit-engine/internal/flow"
	"benefit-engine/internal/observability"
	"benefit-engine/internal/questions"
)

var ErrSessionNotFound = errors.New("session not found")

const DefaultTTL = 2 * time.Hour

type session struct {
	mu       sync.Mutex
	conv     *flow.Conversation
	lastSeen time.Time
}

type Store struct {
	catalog questions.Catalog
	ttl     time.Duration
	now     func() time.Time
	metrics *observability.Metrics

	mu       sync.RWMutex
	sessions map[string]*session
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithMetrics(m *observability.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

func NewStore(catalog questions.Catalog, ttl time.Duration, opts ...Option) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new conversation and returns its id.
func (s *Store) Create() string {
	id := uuid.New().String()
	sess := &session{conv: flow.New(s.catalog), lastSeen: s.now()}

	s.mu.Lock()
	s.sessions[id] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(n)
	return id
}

// Do runs fn with exclusive access to the session's conversation. Answers
// to one session are therefore applied one at a time.
func (s *Store) Do(id string, fn func(c *flow.Conversation) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	now := s.now()
	if now.Sub(sess.lastSeen) > s.ttl {
		s.Delete(id)
		return ErrSessionNotFound
	}
	sess.lastSeen = now
	return fn(sess.conv)
}

// Delete removes the session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(n)
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes every session idle for longer than the TTL and returns how
// many were removed. Sessions busy in Do are left for the next sweep.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
		sess.mu.Unlock()
	}
	n := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(n)
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	logger = observability.OrNop(logger)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				logger.Info("expired sessions removed", zap.Int("count", removed), zap.Int("active", s.Len()))
			}
		case <-ctx.Done():
			return
		}
	}
}
