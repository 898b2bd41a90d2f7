package sqlite

import (
	"context"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
)

type playerSportsRepo struct {
	db dbtx
}

func (r *playerSportsRepo) CreatePlayerSport(ctx context.Context, ps domain.PlayerSport) error {
	if ps.CreatedAt.IsZero() {
		ps.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO player_sports (id, user_id, player_id, sport_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		ps.ID, ps.UserID, ps.PlayerID, ps.SportID, ps.CreatedAt)
	return mapConflict(err)
}

func (r *playerSportsRepo) HasPlayerSport(ctx context.Context, playerID, sportID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM player_sports WHERE player_id = ? AND sport_id = ?`,
		playerID, sportID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
