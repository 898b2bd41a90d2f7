package domain

import "time"

// AuthType identifies how a credential authenticates. Local email+password
// accounts use AuthTypeLocal; OAuth providers would add their own types.
type AuthType string

const AuthTypeLocal AuthType = "WESPORT"

// AuthMethod is a credential record attached to a user. It duplicates the
// password hash so future non-local methods can coexist on one account.
type AuthMethod struct {
	ID           string
	UserID       string
	Type         AuthType
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}
