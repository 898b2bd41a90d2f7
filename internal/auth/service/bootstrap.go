package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/idx"
	"github.com/wesports/auth/pkg/slogx"
)

// seedLanguages are installed on first boot so language resolution always has
// something to fall back to.
var seedLanguages = []domain.Language{
	{Code: "en", Name: "English", NativeName: "English", Active: true},
	{Code: "fr", Name: "French", NativeName: "Français", Active: true},
	{Code: "es", Name: "Spanish", NativeName: "Español", Active: true},
	{Code: "de", Name: "German", NativeName: "Deutsch", Active: true},
	{Code: "it", Name: "Italian", NativeName: "Italiano", Active: true},
	{Code: "pt", Name: "Portuguese", NativeName: "Português", Active: true},
}

// BootstrapService seeds reference data on an empty database: the language
// list and the default sport. Safe to run on every start.
type BootstrapService struct {
	Store store.Store
}

func NewBootstrapService(st store.Store) *BootstrapService {
	return &BootstrapService{Store: st}
}

// EnsureSeedData installs reference rows that queries depend on. Existing
// rows are left untouched.
func (s *BootstrapService) EnsureSeedData(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	empty, err := s.Store.Languages().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check languages: %w", err)
	}
	if empty {
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			for _, l := range seedLanguages {
				l.ID = idx.New().String()
				if err := tx.Languages().CreateLanguage(ctx, l); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("seed languages: %w", err)
		}
		log.Info("seeded languages", "count", len(seedLanguages))
	}

	_, err = s.Store.Sports().GetSportByCode(ctx, domain.DefaultSportCode)
	if errors.Is(err, store.ErrNotFound) {
		sport := domain.Sport{
			ID:        idx.New().String(),
			Name:      "Football",
			Code:      domain.DefaultSportCode,
			CreatedAt: time.Now().UTC(),
		}
		err := s.Store.Sports().CreateSport(ctx, sport)
		switch {
		case err == nil:
			log.Info("seeded default sport", "code", sport.Code)
		case errors.Is(err, store.ErrAlreadyExists):
			// a racing replica inserted it first
		default:
			return fmt.Errorf("seed sport: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("check sport: %w", err)
	}

	return nil
}
