package domain

import "time"

// DefaultSportCode is the sport every player is associated with at role
// selection until multi-sport support ships.
const DefaultSportCode = "FOOTBALL"

type Sport struct {
	ID          string
	Name        string
	Code        string // unique, e.g. "FOOTBALL"
	Description string
	CreatedAt   time.Time
}

// PlayerSport joins a player to a sport. One row per (player, sport).
type PlayerSport struct {
	ID        string
	UserID    string
	PlayerID  string
	SportID   string
	CreatedAt time.Time
}
