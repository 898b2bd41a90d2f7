package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefreshRotatesToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.register(t, "p@example.com", "hunter2hunter2")

	user, err := env.Store.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	pair, err := env.Tokens.MintPair(user)
	require.NoError(t, err)

	rotated, rotatedUser, err := env.Tokens.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, userID, rotatedUser.ID)
	require.NotEmpty(t, rotated.AccessToken)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The old token died with the rotation
	_, _, err = env.Tokens.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)

	// The new one works exactly once as well
	_, _, err = env.Tokens.Refresh(ctx, rotated.RefreshToken)
	require.NoError(t, err)
	_, _, err = env.Tokens.Refresh(ctx, rotated.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshRejectsWrongTokenShape(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.register(t, "p@example.com", "hunter2hunter2")

	user, err := env.Store.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	pair, err := env.Tokens.MintPair(user)
	require.NoError(t, err)

	// An access token is not accepted at the refresh endpoint
	_, _, err = env.Tokens.Refresh(ctx, pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, _, err = env.Tokens.Refresh(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Mint a structurally valid refresh token for an account that was never
	// created.
	ghost := ghostUser()
	pair, err := env.Tokens.MintPair(ghost)
	require.NoError(t, err)

	_, _, err = env.Tokens.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogoutIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.register(t, "p@example.com", "hunter2hunter2")

	user, err := env.Store.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	pair, err := env.Tokens.MintPair(user)
	require.NoError(t, err)

	require.NoError(t, env.Tokens.Logout(ctx, pair.RefreshToken))
	require.NoError(t, env.Tokens.Logout(ctx, pair.RefreshToken))
	require.NoError(t, env.Tokens.Logout(ctx, "not-even-a-jwt"))

	_, _, err = env.Tokens.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestVerifyRegistrationRejectsOtherAudiences(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "p@example.com", "hunter2hunter2")

	user, err := env.Store.Users().GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	pair, err := env.Tokens.MintPair(user)
	require.NoError(t, err)

	_, err = env.Tokens.VerifyRegistration(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidRegistrationToken)
	_, err = env.Tokens.VerifyRegistration(pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRegistrationToken)
}

func TestAccessVerifierAcceptsMintedAccessToken(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "p@example.com", "hunter2hunter2")

	user, err := env.Store.Users().GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	pair, err := env.Tokens.MintPair(user)
	require.NoError(t, err)

	claims, err := env.Tokens.AccessVerifier().Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, userID, claims.Subject)
	require.Equal(t, "p@example.com", claims.Email)

	// Refresh tokens must not pass the access verifier
	_, err = env.Tokens.AccessVerifier().Verify(pair.RefreshToken)
	require.Error(t, err)
}
