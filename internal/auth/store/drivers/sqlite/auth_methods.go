package sqlite

import (
	"context"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
)

type authMethodsRepo struct {
	db dbtx
}

func (r *authMethodsRepo) CreateAuthMethod(ctx context.Context, m domain.AuthMethod) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_methods (id, user_id, auth_type, email, password_hash, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, string(m.Type), m.Email, m.PasswordHash, m.Active, m.CreatedAt)
	return mapConflict(err)
}

func (r *authMethodsRepo) GetAuthMethod(ctx context.Context, userID string, typ domain.AuthType) (domain.AuthMethod, error) {
	var m domain.AuthMethod
	var t string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, auth_type, email, password_hash, active, created_at
		FROM auth_methods WHERE user_id = ? AND auth_type = ?`,
		userID, string(typ),
	).Scan(&m.ID, &m.UserID, &t, &m.Email, &m.PasswordHash, &m.Active, &m.CreatedAt)
	if err != nil {
		return domain.AuthMethod{}, mapNotFound(err)
	}
	m.Type = domain.AuthType(t)
	return m, nil
}
