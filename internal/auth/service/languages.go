package service

import (
	"context"
	"fmt"

	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/authsdk"
)

// LanguageService exposes the selectable platform languages.
type LanguageService struct {
	Store store.Store
}

func NewLanguageService(st store.Store) *LanguageService {
	return &LanguageService{Store: st}
}

// ListActive returns the active languages ordered by code.
func (s *LanguageService) ListActive(ctx context.Context) ([]authsdk.Language, error) {
	list, err := s.Store.Languages().ListActiveLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	out := make([]authsdk.Language, 0, len(list))
	for _, l := range list {
		out = append(out, authsdk.Language{
			Code:       l.Code,
			Name:       l.Name,
			NativeName: l.NativeName,
		})
	}
	return out, nil
}
