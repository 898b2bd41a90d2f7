package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Placeholder names assigned at account creation and replaced when the
// profile form is submitted.
const (
	PlaceholderFirstName = "User"
	PlaceholderLastName  = "Name"
)

type User struct {
	ID              string // deterministic subject id, see SubjectID
	Email           string // normalized, unique
	FirstName       string
	LastName        string
	PasswordHash    string // argon2 encoded, empty until password setup
	EmailVerified   bool
	Role            Role
	Gender          string
	Birthday        *time.Time
	Phone           string
	Nationality     string
	Residence       string
	SpokenLanguages []string
	LanguageID      string
	Step            RegistrationStep
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPassword reports whether the password setup step has completed.
func (u *User) HasPassword() bool { return u.PasswordHash != "" }

// Role is the platform role selected during registration.
type Role string

const (
	RolePlayer Role = "PLAYER"
	RoleScout  Role = "SCOUT"
	RoleCoach  Role = "COACH"
)

// subjectNamespace seeds the name-based UUID used for pre-account subjects.
// Changing it orphans every pending (unverified) registration.
var subjectNamespace = uuid.MustParse("9f2c1a54-7c1e-4df0-9b35-2b61a5a4f8d2")

// NormalizeEmail canonicalizes an email address for identity purposes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SubjectID derives a stable identifier from a normalized email so OTP rows
// can reference a subject before any account row exists. The same id becomes
// the user id at account creation.
func SubjectID(email string) string {
	return uuid.NewSHA1(subjectNamespace, []byte(NormalizeEmail(email))).String()
}
