// Package session keeps the cart and favorites of every storefront visitor.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/shophub/internal/models"
	"github.com/rogerio-castellano/shophub/internal/repo"
	"github.com/rogerio-castellano/shophub/internal/store"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("session not found")

type session struct {
	mu        sync.Mutex
	cart      *store.Cart
	favorites *store.Favorites
	deleted   bool
	// guarded by Manager.mu
	lastSeen time.Time
}

func (s *session) snapshot(now time.Time) models.Snapshot {
	return models.Snapshot{
		Cart:      s.cart.Snapshot(),
		Favorites: s.favorites.Snapshot(),
		UpdatedAt: now,
	}
}

// Manager hands out sessions and runs every change to one session under that
// session's lock. When a SessionRepository is set, each change is saved and
// sessions missing from memory are loaded from it.
type Manager struct {
	repo repo.SessionRepository
	log  logrus.FieldLogger
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewManager creates a manager. r may be nil to keep sessions in memory only.
func NewManager(r repo.SessionRepository, log logrus.FieldLogger) *Manager {
	return &Manager{
		repo:     r,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Create starts an empty session and returns its id.
func (m *Manager) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	s := &session{cart: store.NewCart(), favorites: store.NewFavorites(), lastSeen: m.now()}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	if m.repo != nil {
		if err := m.repo.Save(ctx, id, s.snapshot(m.now())); err != nil {
			m.log.WithError(err).WithField("session_id", id).Warn("could not persist new session")
		}
	}
	m.log.WithField("session_id", id).Debug("session created")
	return id, nil
}

// View runs fn with read access to the session stores.
func (m *Manager) View(ctx context.Context, id string, fn func(cart *store.Cart, favorites *store.Favorites)) error {
	s, err := m.get(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleted {
		return ErrNotFound
	}
	fn(s.cart, s.favorites)
	return nil
}

// Update runs fn with write access to the session stores and saves the result.
// A failed save is logged; the in-memory state stays authoritative.
func (m *Manager) Update(ctx context.Context, id string, fn func(cart *store.Cart, favorites *store.Favorites)) error {
	s, err := m.get(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleted {
		return ErrNotFound
	}
	fn(s.cart, s.favorites)

	if m.repo != nil {
		if err := m.repo.Save(ctx, id, s.snapshot(m.now())); err != nil {
			m.log.WithError(err).WithField("session_id", id).Warn("could not persist session")
		}
	}
	return nil
}

// Delete forgets the session in memory and in the repository. An Update
// still running on the session finishes first and its save is removed with it.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.deleted = true
	}
	if m.repo != nil {
		return m.repo.Delete(ctx, id)
	}
	return nil
}

// Len is the number of sessions held in memory.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than idle from memory. Persisted
// sessions come back on their next use.
func (m *Manager) Sweep(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.now().Sub(s.lastSeen) > idle {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper calls Sweep every interval until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(idle); n > 0 {
				m.log.WithField("removed", n).Info("idle sessions evicted")
			}
		}
	}
}

// get does not hold m.mu while loading from the repository. When two loads of
// the same id race, the first one stored wins.
func (m *Manager) get(ctx context.Context, id string) (*session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	if s, ok := m.cached(id); ok {
		return s, nil
	}
	if m.repo == nil {
		return nil, ErrNotFound
	}

	snap, err := m.repo.Load(ctx, id)
	if errors.Is(err, repo.ErrSessionNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.lastSeen = m.now()
		return s, nil
	}
	s := &session{
		cart:      store.RestoreCart(snap.Cart),
		favorites: store.RestoreFavorites(snap.Favorites),
		lastSeen:  m.now(),
	}
	m.sessions[id] = s
	return s, nil
}

func (m *Manager) cached(id string) (*session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = m.now()
	}
	return s, ok
}
