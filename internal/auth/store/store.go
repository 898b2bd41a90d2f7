package store

import (
	"context"
	"errors"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to actively stop callers from accidentally opening
// transactions within transactions.
type Store interface {
	Users() Users
	OTPs() OTPs
	AuthMethods() AuthMethods
	Players() Players
	Sports() Sports
	PlayerSports() PlayerSports
	Languages() Languages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., OTP
	// rotation). The caller MUST call Commit() or Rollback() on the
	// returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// ProfileUpdate carries the fields set by the profile form.
type ProfileUpdate struct {
	FirstName       string
	LastName        string
	Birthday        *time.Time
	Phone           string
	Nationality     string
	Residence       string
	SpokenLanguages []string
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateStep advances the registration step marker.
	UpdateStep(ctx context.Context, userID string, step domain.RegistrationStep) error

	// UpdateRole sets the platform role chosen during registration.
	UpdateRole(ctx context.Context, userID string, role domain.Role) error

	// UpdateGender sets the gender collected during onboarding.
	UpdateGender(ctx context.Context, userID string, gender string) error

	// UpdateProfile applies the profile-form fields and bumps updated_at.
	UpdateProfile(ctx context.Context, userID string, p ProfileUpdate) error
}

type OTPs interface {
	// GetOTP returns the row for (subject, purpose) regardless of validity;
	// expiry and attempt policy live in the domain model.
	GetOTP(ctx context.Context, subject string, purpose domain.OTPPurpose) (domain.OTP, error)

	// ReplaceOTP deletes any existing row for (subject, purpose) and inserts
	// the given one. Run inside a transaction when paired with other writes.
	ReplaceOTP(ctx context.Context, o domain.OTP) error

	// UpdateAttempts persists the attempt counter after a verification try.
	UpdateAttempts(ctx context.Context, id string, attempts int) error

	// DeleteOTP removes the row for (subject, purpose) if present.
	DeleteOTP(ctx context.Context, subject string, purpose domain.OTPPurpose) error

	// DeleteExpiredOTPs removes rows created before the cutoff (housekeeping).
	DeleteExpiredOTPs(ctx context.Context, before time.Time) (int64, error)
}

type AuthMethods interface {
	// CreateAuthMethod inserts a credential record for a user.
	CreateAuthMethod(ctx context.Context, m domain.AuthMethod) error

	// GetAuthMethod returns the credential of the given type for a user.
	GetAuthMethod(ctx context.Context, userID string, typ domain.AuthType) (domain.AuthMethod, error)
}

type Players interface {
	// GetPlayerByID returns the player profile (id equals the user id).
	GetPlayerByID(ctx context.Context, id string) (domain.Player, error)

	// CreatePlayer inserts a player profile row.
	CreatePlayer(ctx context.Context, p domain.Player) error

	// UpdatePosition sets the playing position.
	UpdatePosition(ctx context.Context, id string, position string) error

	// UpdateCategory sets the competition category.
	UpdateCategory(ctx context.Context, id string, category string) error
}

type Sports interface {
	// GetSportByCode returns a sport by its unique code.
	GetSportByCode(ctx context.Context, code string) (domain.Sport, error)

	// CreateSport inserts a sport.
	CreateSport(ctx context.Context, s domain.Sport) error
}

type PlayerSports interface {
	// CreatePlayerSport inserts a join row.
	CreatePlayerSport(ctx context.Context, ps domain.PlayerSport) error

	// HasPlayerSport reports whether the join row already exists.
	HasPlayerSport(ctx context.Context, playerID, sportID string) (bool, error)
}

type Languages interface {
	// GetLanguageByCode returns a language by its unique code.
	GetLanguageByCode(ctx context.Context, code string) (domain.Language, error)

	// ListActiveLanguages returns active languages ordered by code.
	ListActiveLanguages(ctx context.Context) ([]domain.Language, error)

	// CreateLanguage inserts a language (bootstrap seeding).
	CreateLanguage(ctx context.Context, l domain.Language) error

	// IsEmpty returns true if there are no languages.
	IsEmpty(ctx context.Context) (bool, error)
}
