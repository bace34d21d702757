package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/shophub/internal/models"
)

// SessionRepository persists the cart and favorites of a session between restarts.
type SessionRepository interface {
	Load(ctx context.Context, id string) (models.Snapshot, error)
	Save(ctx context.Context, id string, s models.Snapshot) error
	Delete(ctx context.Context, id string) error
}

// ErrSessionNotFound is returned by Load when nothing was saved for the id.
var ErrSessionNotFound = errors.New("session not found")
