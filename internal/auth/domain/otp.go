package domain

import (
	"time"

	"github.com/wesports/auth/pkg/cryptox"
	"github.com/wesports/auth/pkg/idx"
)

// OTPPurpose distinguishes the two one-time rows stored per subject.
type OTPPurpose string

const (
	// PurposeRegistration rows hold a 6-digit code emailed to the subject.
	PurposeRegistration OTPPurpose = "REGISTRATION"

	// PurposeEmailVerified rows are markers left after a successful code
	// check; their Code field carries the jti of the registration token.
	PurposeEmailVerified OTPPurpose = "EMAIL_VERIFIED"
)

const (
	// OTPCodeLength is the number of digits in an emailed code.
	OTPCodeLength = 6

	// OTPTTL is how long a code stays usable after creation.
	OTPTTL = 10 * time.Minute

	// OTPMaxAttempts is the verification attempt budget per code.
	OTPMaxAttempts = 3
)

// OTP is a one-time row keyed by (subject, purpose). At most one row exists
// per key; issuing a replacement deletes the old row first.
type OTP struct {
	ID           string
	Subject      string
	Purpose      OTPPurpose
	Code         string
	LanguageHint string
	Attempts     int
	CreatedAt    time.Time
}

// NewOTP creates a REGISTRATION row with a fresh random 6-digit code.
func NewOTP(subject, languageHint string) (*OTP, error) {
	code, err := cryptox.GenerateNumericCode(OTPCodeLength)
	if err != nil {
		return nil, err
	}

	return &OTP{
		ID:           idx.New().String(),
		Subject:      subject,
		Purpose:      PurposeRegistration,
		Code:         code,
		LanguageHint: languageHint,
		Attempts:     0,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NewVerificationMarker creates an EMAIL_VERIFIED row whose code carries the
// jti of the registration token minted alongside it.
func NewVerificationMarker(subject, jti string) *OTP {
	return &OTP{
		ID:        idx.New().String(),
		Subject:   subject,
		Purpose:   PurposeEmailVerified,
		Code:      jti,
		Attempts:  0,
		CreatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the row is still usable: younger than OTPTTL and
// under the attempt budget.
func (o *OTP) Valid() bool {
	return o.ValidAt(time.Now().UTC())
}

// ValidAt is Valid evaluated at a given instant, for tests.
func (o *OTP) ValidAt(now time.Time) bool {
	if now.Sub(o.CreatedAt) >= OTPTTL {
		return false
	}
	return o.Attempts < OTPMaxAttempts
}

// Verify checks a submitted code. An invalid row fails without consuming an
// attempt; a valid row consumes one attempt unconditionally, then compares.
func (o *OTP) Verify(code string) bool {
	if !o.Valid() {
		return false
	}
	o.Attempts++
	return o.Code == code
}

// RemainingAttempts returns how many verification tries are left.
func (o *OTP) RemainingAttempts() int {
	left := OTPMaxAttempts - o.Attempts
	if left < 0 {
		return 0
	}
	return left
}

// ExpiresIn returns the time left before the row ages out, clamped at zero.
func (o *OTP) ExpiresIn(now time.Time) time.Duration {
	d := o.CreatedAt.Add(OTPTTL).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
