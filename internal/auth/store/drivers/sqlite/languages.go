package sqlite

import (
	"context"

	"github.com/wesports/auth/internal/auth/domain"
)

type languagesRepo struct {
	db dbtx
}

func (r *languagesRepo) GetLanguageByCode(ctx context.Context, code string) (domain.Language, error) {
	var l domain.Language
	err := r.db.QueryRowContext(ctx, `
		SELECT id, code, name, native_name, active
		FROM languages WHERE code = ?`, code,
	).Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.Active)
	if err != nil {
		return domain.Language{}, mapNotFound(err)
	}
	return l, nil
}

func (r *languagesRepo) ListActiveLanguages(ctx context.Context) ([]domain.Language, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, name, native_name, active
		FROM languages WHERE active = 1 ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.Active); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *languagesRepo) CreateLanguage(ctx context.Context, l domain.Language) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO languages (id, code, name, native_name, active)
		VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Code, l.Name, l.NativeName, l.Active)
	return mapConflict(err)
}

func (r *languagesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM languages`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
