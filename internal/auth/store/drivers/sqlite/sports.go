package sqlite

import (
	"context"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
)

type sportsRepo struct {
	db dbtx
}

func (r *sportsRepo) GetSportByCode(ctx context.Context, code string) (domain.Sport, error) {
	var s domain.Sport
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, code, description, created_at
		FROM sports WHERE code = ?`, code,
	).Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.CreatedAt)
	if err != nil {
		return domain.Sport{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sportsRepo) CreateSport(ctx context.Context, s domain.Sport) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sports (id, name, code, description, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Code, s.Description, s.CreatedAt)
	return mapConflict(err)
}
