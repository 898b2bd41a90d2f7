package domain

import "time"

// Player extends a user with recruitment-profile fields. Its ID equals the
// user id.
type Player struct {
	ID            string
	Position      string
	Category      string
	PreferredFoot string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Positions a player profile may declare, as shown in the onboarding wizard.
var PlayerPositions = []string{
	"GOALKEEPER",
	"DEFENDER",
	"MIDFIELDER",
	"FORWARD",
}

// Categories (competition levels) offered in the onboarding wizard.
var PlayerCategories = []string{
	"AMATEUR",
	"SEMI_PROFESSIONAL",
	"PROFESSIONAL",
	"YOUTH_ACADEMY",
}
