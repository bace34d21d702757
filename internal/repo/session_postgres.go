package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rogerio-castellano/shophub/internal/models"
)

type PostgresSessionRepository struct {
	db *sql.DB
}

func NewPostgresSessionRepository(db *sql.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Load(ctx context.Context, id string) (models.Snapshot, error) {
	query := `SELECT state FROM sessions WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Snapshot{}, pkgerrors.Wrapf(err, "load session %s", id)
	}

	var s models.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return models.Snapshot{}, pkgerrors.Wrapf(err, "decode session %s", id)
	}
	return s, nil
}

func (r *PostgresSessionRepository) Save(ctx context.Context, id string, s models.Snapshot) error {
	query := `
		INSERT INTO sessions (id, state, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at
	`
	raw, err := json.Marshal(s)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode session %s", id)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := r.db.ExecContext(ctx, query, id, string(raw), s.UpdatedAt); err != nil {
		return pkgerrors.Wrapf(err, "save session %s", id)
	}
	return nil
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return pkgerrors.Wrapf(err, "delete session %s", id)
	}
	return nil
}
