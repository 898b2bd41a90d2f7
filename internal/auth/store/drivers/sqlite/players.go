package sqlite

import (
	"context"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/store"
)

type playersRepo struct {
	db dbtx
}

func (r *playersRepo) GetPlayerByID(ctx context.Context, id string) (domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRowContext(ctx, `
		SELECT id, position, category, preferred_foot, created_at, updated_at
		FROM players WHERE id = ?`, id,
	).Scan(&p.ID, &p.Position, &p.Category, &p.PreferredFoot, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Player{}, mapNotFound(err)
	}
	return p, nil
}

func (r *playersRepo) CreatePlayer(ctx context.Context, p domain.Player) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO players (id, position, category, preferred_foot, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Position, p.Category, p.PreferredFoot, p.CreatedAt, p.UpdatedAt)
	return mapConflict(err)
}

func (r *playersRepo) UpdatePosition(ctx context.Context, id string, position string) error {
	return r.exec(ctx,
		`UPDATE players SET position = ?, updated_at = ? WHERE id = ?`,
		position, time.Now().UTC(), id)
}

func (r *playersRepo) UpdateCategory(ctx context.Context, id string, category string) error {
	return r.exec(ctx,
		`UPDATE players SET category = ?, updated_at = ? WHERE id = ?`,
		category, time.Now().UTC(), id)
}

func (r *playersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
