package sqlite

import (
	"context"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/store"
)

type otpsRepo struct {
	db dbtx
}

func (r *otpsRepo) GetOTP(ctx context.Context, subject string, purpose domain.OTPPurpose) (domain.OTP, error) {
	var o domain.OTP
	var p string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, subject, purpose, code, language_hint, attempts, created_at
		FROM otps WHERE subject = ? AND purpose = ?`,
		subject, string(purpose),
	).Scan(&o.ID, &o.Subject, &p, &o.Code, &o.LanguageHint, &o.Attempts, &o.CreatedAt)
	if err != nil {
		return domain.OTP{}, mapNotFound(err)
	}
	o.Purpose = domain.OTPPurpose(p)
	return o, nil
}

// ReplaceOTP enforces the one-row-per-(subject,purpose) rule by deleting any
// stale row first. Callers pair it with other writes inside a transaction.
func (r *otpsRepo) ReplaceOTP(ctx context.Context, o domain.OTP) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM otps WHERE subject = ? AND purpose = ?`,
		o.Subject, string(o.Purpose)); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO otps (id, subject, purpose, code, language_hint, attempts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Subject, string(o.Purpose), o.Code, o.LanguageHint, o.Attempts, o.CreatedAt)
	return mapConflict(err)
}

func (r *otpsRepo) UpdateAttempts(ctx context.Context, id string, attempts int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE otps SET attempts = ? WHERE id = ?`, attempts, id)
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

func (r *otpsRepo) DeleteOTP(ctx context.Context, subject string, purpose domain.OTPPurpose) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM otps WHERE subject = ? AND purpose = ?`,
		subject, string(purpose))
	return err
}

func (r *otpsRepo) DeleteExpiredOTPs(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM otps WHERE created_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
