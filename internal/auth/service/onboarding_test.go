package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wesports/auth/internal/auth/domain"
)

// onboardedUser walks an account to the ONBOARDING step.
func onboardedUser(t *testing.T, env *testEnv) string {
	t.Helper()
	ctx := context.Background()

	userID := env.register(t, "p@example.com", "hunter2hunter2")
	_, err := env.Registration.SelectRole(ctx, userID, "PLAYER")
	require.NoError(t, err)
	_, err = env.Registration.SubmitProfile(ctx, userID, profileFixture())
	require.NoError(t, err)
	return userID
}

func TestOnboardingStatusProgression(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := onboardedUser(t, env)

	status, err := env.Onboarding.Status(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StepOnboarding), status.CurrentStep)
	require.True(t, status.EmailVerified)
	require.True(t, status.PasswordSet)
	require.True(t, status.RoleSelected)
	require.True(t, status.ProfileCompleted)
	require.False(t, status.GenderSet)
	require.False(t, status.PositionSet)
	require.False(t, status.CategorySet)
	require.False(t, status.Completed)
	require.Equal(t, string(domain.StepOnboarding), status.NextStep)

	_, err = env.Onboarding.SetGender(ctx, userID, "female")
	require.NoError(t, err)
	_, err = env.Onboarding.SetPosition(ctx, userID, "midfielder")
	require.NoError(t, err)
	_, err = env.Onboarding.SetCategory(ctx, userID, "amateur")
	require.NoError(t, err)

	status, err = env.Onboarding.Status(ctx, userID)
	require.NoError(t, err)
	require.True(t, status.GenderSet)
	require.True(t, status.PositionSet)
	require.True(t, status.CategorySet)

	resp, err := env.Onboarding.Complete(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StepCompleted), resp.NextStep)

	status, err = env.Onboarding.Status(ctx, userID)
	require.NoError(t, err)
	require.True(t, status.Completed)
	require.Empty(t, status.NextStep)

	// Values are uppercased on the way in
	player, err := env.Store.Players().GetPlayerByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "MIDFIELDER", player.Position)
	require.Equal(t, "AMATEUR", player.Category)
}

func TestOnboardingValidatesInputs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := onboardedUser(t, env)

	_, err := env.Onboarding.SetGender(ctx, userID, "unknown")
	require.ErrorIs(t, err, ErrInvalidGender)
	_, err = env.Onboarding.SetPosition(ctx, userID, "STRIKER")
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = env.Onboarding.SetCategory(ctx, userID, "LEGENDARY")
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestOnboardingGuardsEarlySteps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Account that only finished password setup.
	userID := env.register(t, "early@example.com", "hunter2hunter2")

	_, err := env.Onboarding.SetGender(ctx, userID, "MALE")
	require.ErrorIs(t, err, ErrRegistrationIncomplete)
	_, err = env.Onboarding.SetPosition(ctx, userID, "FORWARD")
	require.ErrorIs(t, err, ErrRegistrationIncomplete)
	_, err = env.Onboarding.Complete(ctx, userID)
	require.ErrorIs(t, err, ErrRegistrationIncomplete)
}

func TestOnboardingUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Onboarding.Status(context.Background(), ghostUser().ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestOnboardingListsChoices(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, domain.PlayerPositions, env.Onboarding.Positions())
	require.Equal(t, domain.PlayerCategories, env.Onboarding.Categories())
}

func TestLanguagesSeeded(t *testing.T) {
	env := newTestEnv(t)

	langs, err := NewLanguageService(env.Store).ListActive(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, langs)

	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Code)
	}
	require.Contains(t, codes, "en")
	require.Contains(t, codes, "fr")
}
