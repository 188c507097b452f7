package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vango-dev/featuregrid/internal/errors"
)

// SessionManager owns the live sessions. Sessions are kept in memory and
// removed after SessionTTL without activity.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	newScreen   func() (Screen, error)
	maxSessions int
	ttl         time.Duration

	onCreate func(*Session)
	onClose  func(*Session)

	logger *slog.Logger
}

// NewSessionManager creates a manager. newScreen is called once per
// session.
func NewSessionManager(newScreen func() (Screen, error), maxSessions int, ttl time.Duration, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		sessions:    make(map[string]*Session),
		newScreen:   newScreen,
		maxSessions: maxSessions,
		ttl:         ttl,
		logger:      logger.With("component", "session_manager"),
	}
}

// SetOnSessionCreate sets a callback run after a session is created.
func (sm *SessionManager) SetOnSessionCreate(fn func(*Session)) {
	sm.onCreate = fn
}

// SetOnSessionClose sets a callback run after a session is removed and
// closed.
func (sm *SessionManager) SetOnSessionClose(fn func(*Session)) {
	sm.onClose = fn
}

// Create starts a new session. It fails with E502 when the manager is
// full.
func (sm *SessionManager) Create() (*Session, error) {
	screen, err := sm.newScreen()
	if err != nil {
		return nil, err
	}

	sm.mu.Lock()
	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		sm.mu.Unlock()
		return nil, errors.New("E502").
			WithDetailf("%d sessions are live", sm.maxSessions).
			WithSuggestion("Raise server.maxSessions or lower server.sessionTTL")
	}
	s := newSession(uuid.NewString(), screen, sm.logger)
	sm.sessions[s.ID] = s
	count := len(sm.sessions)
	sm.mu.Unlock()

	sm.logger.Debug("session created", "session_id", s.ID, "sessions", count)
	if sm.onCreate != nil {
		sm.onCreate(s)
	}
	return s, nil
}

// Get returns the session with id, or nil.
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// Close removes a session.
func (sm *SessionManager) Close(id string) {
	sm.mu.Lock()
	s, ok := sm.sessions[id]
	delete(sm.sessions, id)
	sm.mu.Unlock()

	if ok {
		sm.logger.Debug("session closed", "session_id", id)
		sm.closed(s)
	}
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Sweep removes sessions idle since before now minus the TTL and returns
// how many were removed.
func (sm *SessionManager) Sweep(now time.Time) int {
	cutoff := now.Add(-sm.ttl)

	sm.mu.Lock()
	var expired []*Session
	for id, s := range sm.sessions {
		if s.LastActive().Before(cutoff) {
			expired = append(expired, s)
			delete(sm.sessions, id)
		}
	}
	sm.mu.Unlock()

	for _, s := range expired {
		sm.closed(s)
	}
	if len(expired) > 0 {
		sm.logger.Info("expired idle sessions", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is cancelled.
func (sm *SessionManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sm.Sweep(now)
		}
	}
}

// Shutdown closes every session.
func (sm *SessionManager) Shutdown() {
	sm.mu.Lock()
	all := sm.sessions
	sm.sessions = make(map[string]*Session)
	sm.mu.Unlock()

	for _, s := range all {
		sm.closed(s)
	}
}

// closed ends a session that has left the map.
func (sm *SessionManager) closed(s *Session) {
	s.Close()
	if sm.onClose != nil {
		sm.onClose(s)
	}
}
