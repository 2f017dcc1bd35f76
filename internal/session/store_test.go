package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefit-engine/internal/flow"
	"benefit-engine/internal/observability"
	"benefit-engine/internal/questions"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, time.October, 3, 9, 0, 0, 0, time.UTC)}
	return NewStore(questions.Default(), ttl, WithClock(clock.Now)), clock
}

func TestCreateAndDo(t *testing.T) {
	s, _ := newStore(time.Hour)
	id := s.Create()
	require.NotEmpty(t, id)
	assert.Equal(t, 1, s.Len())

	err := s.Do(id, func(c *flow.Conversation) error {
		return c.Submit("Maria", "")
	})
	require.NoError(t, err)

	var name string
	require.NoError(t, s.Do(id, func(c *flow.Conversation) error {
		name = c.Profile().Personal.FirstName
		return nil
	}))
	assert.Equal(t, "Maria", name)
}

func TestSessionsAreIndependent(t *testing.T) {
	s, _ := newStore(time.Hour)
	a, b := s.Create(), s.Create()
	require.NotEqual(t, a, b)

	require.NoError(t, s.Do(a, func(c *flow.Conversation) error { return c.Submit("Maria", "") }))
	require.NoError(t, s.Do(b, func(c *flow.Conversation) error {
		assert.Empty(t, c.Profile().Personal.FirstName)
		return nil
	}))
}

func TestDoUnknownSession(t *testing.T) {
	s, _ := newStore(time.Hour)
	err := s.Do("missing", func(*flow.Conversation) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDoPassesErrorsThrough(t *testing.T) {
	s, _ := newStore(time.Hour)
	id := s.Create()
	boom := errors.New("boom")
	assert.ErrorIs(t, s.Do(id, func(*flow.Conversation) error { return boom }), boom)
}

func TestDelete(t *testing.T) {
	s, _ := newStore(time.Hour)
	id := s.Create()
	assert.True(t, s.Delete(id))
	assert.False(t, s.Delete(id))
	assert.ErrorIs(t, s.Do(id, func(*flow.Conversation) error { return nil }), ErrSessionNotFound)
}

func TestExpiredSessionIsGone(t *testing.T) {
	s, clock := newStore(time.Hour)
	id := s.Create()

	clock.Advance(59 * time.Minute)
	require.NoError(t, s.Do(id, func(*flow.Conversation) error { return nil }))

	// activity extends the lifetime
	clock.Advance(59 * time.Minute)
	require.NoError(t, s.Do(id, func(*flow.Conversation) error { return nil }))

	clock.Advance(61 * time.Minute)
	assert.ErrorIs(t, s.Do(id, func(*flow.Conversation) error { return nil }), ErrSessionNotFound)
	assert.Zero(t, s.Len())
}

func TestSweep(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	clock := &fakeClock{now: time.Date(2026, time.October, 3, 9, 0, 0, 0, time.UTC)}
	s := NewStore(questions.Default(), time.Hour, WithClock(clock.Now), WithMetrics(m))

	old := s.Create()
	clock.Advance(45 * time.Minute)
	fresh := s.Create()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ActiveSessions))

	clock.Advance(30 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))

	assert.ErrorIs(t, s.Do(old, func(*flow.Conversation) error { return nil }), ErrSessionNotFound)
	assert.NoError(t, s.Do(fresh, func(*flow.Conversation) error { return nil }))
}

func TestConcurrentAnswersAreSerialised(t *testing.T) {
	s, _ := newStore(time.Hour)
	id := s.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(id, func(c *flow.Conversation) error {
				return c.Submit("x", "")
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Do(id, func(c *flow.Conversation) error {
		assert.NotEmpty(t, c.History())
		return nil
	}))
}

func TestRunStopsWithContext(t *testing.T) {
	s, _ := newStore(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond, nil)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
