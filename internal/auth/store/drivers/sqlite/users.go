package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, first_name, last_name, password_hash, email_verified,
	role, gender, birthday, phone, nationality, residence, spoken_languages,
	language_id, registration_step, created_at, updated_at`

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	var (
		u        domain.User
		birthday sql.NullTime
		spoken   string
		step     string
		role     string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.EmailVerified,
		&role, &u.Gender, &birthday, &u.Phone, &u.Nationality, &u.Residence, &spoken,
		&u.LanguageID, &step, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.Step = domain.RegistrationStep(step)
	u.Birthday = mapNullTimePtr(birthday)
	u.SpokenLanguages = splitList(spoken)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, domain.NormalizeEmail(email))
	return r.scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, first_name, last_name, password_hash, email_verified,
			role, gender, birthday, phone, nationality, residence,
			spoken_languages, language_id, registration_step, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, domain.NormalizeEmail(u.Email), u.FirstName, u.LastName, u.PasswordHash, u.EmailVerified,
		string(u.Role), u.Gender, mapOptionalTime(u.Birthday), u.Phone, u.Nationality, u.Residence,
		joinList(u.SpokenLanguages), u.LanguageID, string(u.Step), u.CreatedAt, u.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return r.exec(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
}

func (r *usersRepo) UpdateStep(ctx context.Context, userID string, step domain.RegistrationStep) error {
	return r.exec(ctx,
		`UPDATE users SET registration_step = ?, updated_at = ? WHERE id = ?`,
		string(step), time.Now().UTC(), userID)
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	return r.exec(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), time.Now().UTC(), userID)
}

func (r *usersRepo) UpdateGender(ctx context.Context, userID string, gender string) error {
	return r.exec(ctx,
		`UPDATE users SET gender = ?, updated_at = ? WHERE id = ?`,
		gender, time.Now().UTC(), userID)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p store.ProfileUpdate) error {
	return r.exec(ctx, `
		UPDATE users SET
			first_name = ?, last_name = ?, birthday = ?, phone = ?,
			nationality = ?, residence = ?, spoken_languages = ?, updated_at = ?
		WHERE id = ?`,
		p.FirstName, p.LastName, mapOptionalTime(p.Birthday), p.Phone,
		p.Nationality, p.Residence, joinList(p.SpokenLanguages), time.Now().UTC(), userID)
}

// exec runs a mutation that must touch exactly one row.
func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
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
