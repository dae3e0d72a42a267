// ABOUTME: Session manager owns one search engine per client session
// ABOUTME: Only session inputs are persisted; a session missing locally is rebuilt and re-fetched

package session

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"course-search-api/core/domain"
	coreerrors "course-search-api/core/errors"
	"course-search-api/core/interfaces"
	"course-search-api/core/search"
	"course-search-api/core/sections"
)

const keyPrefix = "session:"

// Builder creates the engine and optional section loader for a new session.
// The viewport must be passed to the engine so page changes reach the client.
type Builder func(viewport interfaces.Viewport) (*search.Engine, *sections.Loader)

// Inputs is the persisted part of a session. Results are never stored.
type Inputs struct {
	Query   string           `json:"query"`
	Filters domain.FilterSet `json:"filters"`
	Page    int              `json:"page"`
}

// Session is one live search view
type Session struct {
	ID       string
	Engine   *search.Engine
	Sections *sections.Loader
	Viewport *ScrollSignal

	lastSeen atomic.Int64
}

// ScrollSignal implements Viewport by counting scroll requests; clients
// scroll when the sequence number advances.
type ScrollSignal struct {
	seq atomic.Int64
}

// ScrollToTop records one scroll request
func (s *ScrollSignal) ScrollToTop() { s.seq.Add(1) }

// Seq returns the number of scroll requests so far
func (s *ScrollSignal) Seq() int64 { return s.seq.Load() }

// SessionGauge is implemented by metrics backends that track live sessions
type SessionGauge interface {
	SetSessions(n int)
}

// Manager keeps live sessions and persists their inputs through the Cache
type Manager struct {
	deps  interfaces.Dependencies
	build Builder
	ttl   time.Duration

	mu   sync.Mutex
	live map[string]*Session
}

// NewManager creates a manager; deps.Cache must be set
func NewManager(deps interfaces.Dependencies, build Builder, ttl time.Duration) *Manager {
	return &Manager{
		deps:  deps,
		build: build,
		ttl:   ttl,
		live:  make(map[string]*Session),
	}
}

// Create starts a new idle session
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	s := m.newSession(uuid.NewString())
	s.Engine.Start()

	if err := m.Save(ctx, s); err != nil {
		s.Engine.Close()
		return nil, err
	}

	m.add(s)
	m.logInfo("Session created", map[string]interface{}{"session": s.ID})
	return s, nil
}

// Get returns a live session, rebuilding it from persisted inputs when this
// instance does not hold it
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.live[id]
	m.mu.Unlock()
	if ok {
		s.touch(m.deps.Now())
		return s, nil
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, &coreerrors.NotFoundError{Resource: "session", ID: id}
	}

	data, err := m.deps.Cache.Get(ctx, keyPrefix+id)
	if err != nil {
		if coreerrors.IsNotFound(err) {
			return nil, &coreerrors.NotFoundError{Resource: "session", ID: id}
		}
		return nil, coreerrors.WrapError(err, "load session")
	}

	var in Inputs
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, coreerrors.WrapError(err, "decode session")
	}

	s = m.newSession(id)
	s.Engine.Restore(in.Query, in.Filters, in.Page)
	s.Engine.Start()

	// Another request may have rebuilt it first
	m.mu.Lock()
	if existing, ok := m.live[id]; ok {
		m.mu.Unlock()
		s.Engine.Close()
		existing.touch(m.deps.Now())
		return existing, nil
	}
	m.live[id] = s
	n := len(m.live)
	m.mu.Unlock()

	m.reportSessions(n)
	m.logInfo("Session restored", map[string]interface{}{
		"session": id,
		"query":   in.Query,
		"page":    in.Page,
	})
	return s, nil
}

// Save persists the session's current inputs and refreshes its TTL
func (m *Manager) Save(ctx context.Context, s *Session) error {
	state := s.Engine.State()
	data, err := json.Marshal(Inputs{
		Query:   state.Query,
		Filters: state.Filters,
		Page:    state.CurrentPage,
	})
	if err != nil {
		return coreerrors.WrapError(err, "encode session")
	}
	if err := m.deps.Cache.Set(ctx, keyPrefix+s.ID, data, m.ttl); err != nil {
		return coreerrors.WrapError(err, "store session")
	}
	return nil
}

// Delete closes a session and removes its persisted inputs
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.live[id]
	delete(m.live, id)
	n := len(m.live)
	m.mu.Unlock()

	if ok {
		s.Engine.Close()
	}
	m.reportSessions(n)
	return m.deps.Cache.Delete(ctx, keyPrefix+id)
}

// Sweep closes live sessions idle for longer than the TTL. Their persisted
// inputs expire on their own.
func (m *Manager) Sweep() int {
	cutoff := m.deps.Now().Add(-m.ttl).UnixNano()

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.live {
		if s.lastSeen.Load() < cutoff {
			idle = append(idle, s)
			delete(m.live, id)
		}
	}
	n := len(m.live)
	m.mu.Unlock()

	for _, s := range idle {
		s.Engine.Close()
	}
	m.reportSessions(n)
	if len(idle) > 0 {
		m.logInfo("Swept idle sessions", map[string]interface{}{"closed": len(idle)})
	}
	return len(idle)
}

// Run sweeps idle sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Close closes every live session
func (m *Manager) Close() {
	m.mu.Lock()
	live := m.live
	m.live = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range live {
		s.Engine.Close()
	}
	m.reportSessions(0)
}

func (m *Manager) newSession(id string) *Session {
	viewport := &ScrollSignal{}
	engine, loader := m.build(viewport)
	s := &Session{
		ID:       id,
		Engine:   engine,
		Sections: loader,
		Viewport: viewport,
	}
	s.touch(m.deps.Now())
	return s
}

func (m *Manager) add(s *Session) {
	m.mu.Lock()
	m.live[s.ID] = s
	n := len(m.live)
	m.mu.Unlock()
	m.reportSessions(n)
}

func (m *Manager) reportSessions(n int) {
	if g, ok := m.deps.Metrics.(SessionGauge); ok {
		g.SetSessions(n)
	}
}

func (m *Manager) logInfo(msg string, fields map[string]interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Info(msg, fields)
	}
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}
