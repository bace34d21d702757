// Package ban blocks clients that keep exceeding the rate limit.
package ban

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store counts strikes and remembers bans. Both expire on their own.
type Store interface {
	// Strike records one violation for key and returns the count inside the current window.
	Strike(ctx context.Context, key string, window time.Duration) (int, error)
	Ban(ctx context.Context, key string, d time.Duration) error
	IsBanned(ctx context.Context, key string) (bool, error)
}

type Policy struct {
	MaxStrikes int
	Window     time.Duration
	Duration   time.Duration
}

var DefaultPolicy = Policy{MaxStrikes: 5, Window: time.Minute, Duration: 15 * time.Minute}

type Banner struct {
	store  Store
	policy Policy
	log    logrus.FieldLogger
}

func NewBanner(store Store, policy Policy, log logrus.FieldLogger) *Banner {
	return &Banner{store: store, policy: policy, log: log}
}

// IsBanned fails open: a store error lets the request through.
func (b *Banner) IsBanned(ctx context.Context, target string) bool {
	banned, err := b.store.IsBanned(ctx, target)
	if err != nil {
		b.log.WithError(err).WithField("target", target).Warn("ban lookup failed")
		return false
	}
	return banned
}

// RecordViolation adds a strike for target and bans it once the policy limit
// is reached inside the window. It reports whether target is now banned.
func (b *Banner) RecordViolation(ctx context.Context, target, route string) bool {
	strikes, err := b.store.Strike(ctx, target, b.policy.Window)
	if err != nil {
		b.log.WithError(err).WithField("target", target).Warn("could not record strike")
		return false
	}
	if strikes < b.policy.MaxStrikes {
		return false
	}

	if err := b.store.Ban(ctx, target, b.policy.Duration); err != nil {
		b.log.WithError(err).WithField("target", target).Warn("could not ban client")
		return false
	}
	b.log.WithFields(logrus.Fields{
		"target":   target,
		"route":    route,
		"strikes":  strikes,
		"duration": b.policy.Duration.String(),
	}).Warn("client banned")
	return true
}

type entry struct {
	count   int
	expires time.Time
}

// MemoryStore keeps strikes and bans in process.
type MemoryStore struct {
	now func() time.Time

	mu      sync.Mutex
	strikes map[string]entry
	bans    map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:     time.Now,
		strikes: make(map[string]entry),
		bans:    make(map[string]time.Time),
	}
}

func (m *MemoryStore) Strike(ctx context.Context, key string, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, ok := m.strikes[key]
	if !ok || !now.Before(e.expires) {
		e = entry{expires: now.Add(window)}
	}
	e.count++
	m.strikes[key] = e
	return e.count, nil
}

func (m *MemoryStore) Ban(ctx context.Context, key string, d time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bans[key] = m.now().Add(d)
	delete(m.strikes, key)
	return nil
}

func (m *MemoryStore) IsBanned(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	until, ok := m.bans[key]
	if !ok {
		return false, nil
	}
	if !m.now().Before(until) {
		delete(m.bans, key)
		return false, nil
	}
	return true, nil
}
