package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/slogx"
)

// Genders accepted by the onboarding wizard.
var genders = []string{"MALE", "FEMALE", "OTHER"}

// OnboardingService drives the post-registration wizard: gender, playing
// position, competition category and the final completion marker.
type OnboardingService struct {
	Store store.Store
}

func NewOnboardingService(st store.Store) *OnboardingService {
	return &OnboardingService{Store: st}
}

// Status reports how far the user has progressed, with per-field flags so
// clients can resume the wizard mid-way.
func (s *OnboardingService) Status(ctx context.Context, userID string) (authsdk.OnboardingStatus, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return authsdk.OnboardingStatus{}, err
	}

	var player domain.Player
	if p, err := s.Store.Players().GetPlayerByID(ctx, userID); err == nil {
		player = p
	} else if !errors.Is(err, store.ErrNotFound) {
		return authsdk.OnboardingStatus{}, fmt.Errorf("load player: %w", err)
	}

	status := authsdk.OnboardingStatus{
		CurrentStep:      string(user.Step),
		EmailVerified:    user.EmailVerified,
		PasswordSet:      user.HasPassword(),
		RoleSelected:     user.Role != "",
		ProfileCompleted: !user.Step.Before(domain.StepOnboarding),
		GenderSet:        user.Gender != "",
		PositionSet:      player.Position != "",
		CategorySet:      player.Category != "",
		Completed:        user.Step.IsCompleted(),
	}
	if !status.Completed {
		status.NextStep = string(user.Step)
	}
	return status, nil
}

// SetGender records the gender collected during onboarding.
func (s *OnboardingService) SetGender(ctx context.Context, userID, gender string) (authsdk.StepResponse, error) {
	g := strings.ToUpper(strings.TrimSpace(gender))
	if !slices.Contains(genders, g) {
		return authsdk.StepResponse{}, ErrInvalidGender
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return authsdk.StepResponse{}, err
	}
	if user.Step.Before(domain.StepOnboarding) {
		return authsdk.StepResponse{}, ErrRegistrationIncomplete
	}

	if err := s.Store.Users().UpdateGender(ctx, userID, g); err != nil {
		return authsdk.StepResponse{}, fmt.Errorf("save gender: %w", err)
	}

	return authsdk.StepResponse{
		Status:   authsdk.StatusSuccess,
		Message:  "Gender saved successfully",
		NextStep: string(user.Step),
	}, nil
}

// SetPosition records the playing position on the player profile.
func (s *OnboardingService) SetPosition(ctx context.Context, userID, position string) (authsdk.StepResponse, error) {
	p := strings.ToUpper(strings.TrimSpace(position))
	if !slices.Contains(domain.PlayerPositions, p) {
		return authsdk.StepResponse{}, ErrInvalidPosition
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return authsdk.StepResponse{}, err
	}
	if user.Step.Before(domain.StepOnboarding) {
		return authsdk.StepResponse{}, ErrRegistrationIncomplete
	}

	if err := s.Store.Players().UpdatePosition(ctx, userID, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authsdk.StepResponse{}, ErrRegistrationIncomplete
		}
		return authsdk.StepResponse{}, fmt.Errorf("save position: %w", err)
	}

	return authsdk.StepResponse{
		Status:   authsdk.StatusSuccess,
		Message:  "Position saved successfully",
		NextStep: string(user.Step),
	}, nil
}

// SetCategory records the competition category on the player profile.
func (s *OnboardingService) SetCategory(ctx context.Context, userID, category string) (authsdk.StepResponse, error) {
	c := strings.ToUpper(strings.TrimSpace(category))
	if !slices.Contains(domain.PlayerCategories, c) {
		return authsdk.StepResponse{}, ErrInvalidCategory
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return authsdk.StepResponse{}, err
	}
	if user.Step.Before(domain.StepOnboarding) {
		return authsdk.StepResponse{}, ErrRegistrationIncomplete
	}

	if err := s.Store.Players().UpdateCategory(ctx, userID, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authsdk.StepResponse{}, ErrRegistrationIncomplete
		}
		return authsdk.StepResponse{}, fmt.Errorf("save category: %w", err)
	}

	return authsdk.StepResponse{
		Status:   authsdk.StatusSuccess,
		Message:  "Category saved successfully",
		NextStep: string(user.Step),
	}, nil
}

// Complete marks onboarding as finished. Repeated calls are harmless since
// steps never move backwards.
func (s *OnboardingService) Complete(ctx context.Context, userID string) (authsdk.StepResponse, error) {
	log := slogx.FromContext(ctx)

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return authsdk.StepResponse{}, err
	}
	if user.Step.Before(domain.StepOnboarding) {
		return authsdk.StepResponse{}, ErrRegistrationIncomplete
	}

	if err := s.Store.Users().UpdateStep(ctx, userID, domain.StepCompleted); err != nil {
		return authsdk.StepResponse{}, fmt.Errorf("complete onboarding: %w", err)
	}

	log.Info("onboarding completed", "user_id", userID)
	return authsdk.StepResponse{
		Status:   authsdk.StatusSuccess,
		Message:  "Onboarding completed successfully",
		NextStep: string(domain.StepCompleted),
	}, nil
}

// Positions lists the selectable playing positions.
func (s *OnboardingService) Positions() []string { return slices.Clone(domain.PlayerPositions) }

// Categories lists the selectable competition categories.
func (s *OnboardingService) Categories() []string { return slices.Clone(domain.PlayerCategories) }

func (s *OnboardingService) loadUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}
