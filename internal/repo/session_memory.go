package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/shophub/internal/models"
)

type InMemorySessionRepository struct {
	mu        sync.RWMutex
	snapshots map[string]models.Snapshot
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{snapshots: make(map[string]models.Snapshot)}
}

func (r *InMemorySessionRepository) Load(ctx context.Context, id string) (models.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.snapshots[id]
	if !ok {
		return models.Snapshot{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *InMemorySessionRepository) Save(ctx context.Context, id string, s models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[id] = s
	return nil
}

func (r *InMemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, id)
	return nil
}
