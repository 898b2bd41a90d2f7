package service

import (
	"fmt"
	"net/http"
)

// Error is a domain failure with a user-facing message and the HTTP status
// the transport layer should map it to. Message text is part of the API
// contract; clients key UX flows off these strings.
type Error struct {
	HTTPStatus int
	Message    string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrEmailRequired = &Error{http.StatusBadRequest, "Email is required"}
	ErrInvalidEmail  = &Error{http.StatusBadRequest, "Invalid email address"}

	ErrAccountExists           = &Error{http.StatusConflict, "An account with this email already exists. Please log in."}
	ErrTooManyOTPRequests      = &Error{http.StatusTooManyRequests, "Too many verification requests. Please try again later."}
	ErrTooManyReverifyAttempts = &Error{http.StatusTooManyRequests, "Too many verification attempts. Please try again later."}

	ErrOTPNotFound         = &Error{http.StatusBadRequest, "No verification code found. Please request a new one."}
	ErrOTPInvalidOrExpired = &Error{http.StatusBadRequest, "Invalid or expired OTP"}

	ErrPasswordMismatch   = &Error{http.StatusBadRequest, "Passwords do not match"}
	ErrWeakPassword       = &Error{http.StatusBadRequest, "Password must be at least 8 characters"}
	ErrPasswordAlreadySet = &Error{http.StatusConflict, "Password already configured"}

	ErrInvalidRegistrationToken = &Error{http.StatusUnauthorized, "Invalid or expired registration token"}
	ErrInvalidRefreshToken      = &Error{http.StatusUnauthorized, "Invalid or expired refresh token"}

	ErrUserNotFound = &Error{http.StatusNotFound, "User not found"}

	ErrInvalidCredentials     = &Error{http.StatusUnauthorized, "Invalid email or password"}
	ErrEmailNotVerified       = &Error{http.StatusForbidden, "Please verify your email first"}
	ErrRegistrationIncomplete = &Error{http.StatusForbidden, "Please complete your registration first"}
	ErrAccountInactive        = &Error{http.StatusForbidden, "Account is inactive. Please contact support."}

	ErrNameRequired    = &Error{http.StatusBadRequest, "First name and last name are required"}
	ErrInvalidBirthday = &Error{http.StatusBadRequest, "Invalid birthday. Use YYYY-MM-DD."}

	ErrUnsupportedRole = &Error{http.StatusBadRequest, "For now we handle only player"}
	ErrInvalidGender   = &Error{http.StatusBadRequest, "Invalid gender"}
	ErrInvalidPosition = &Error{http.StatusBadRequest, "Invalid position"}
	ErrInvalidCategory = &Error{http.StatusBadRequest, "Invalid category"}
)

// ErrInvalidOTP carries the remaining attempt budget so the user knows how
// many tries are left before the code burns.
func ErrInvalidOTP(remaining int) *Error {
	return &Error{
		HTTPStatus: http.StatusBadRequest,
		Message:    fmt.Sprintf("Invalid verification code. %d attempts remaining.", remaining),
	}
}
