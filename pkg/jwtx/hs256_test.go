package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-at-least-32-bytes-long!!")

func TestHS256_SignAndVerify(t *testing.T) {
	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	require.Equal(t, "HS256", signer.Alg())

	now := time.Now().UTC()
	claims := NewAccessClaims("user-1", "alice@example.com", "wesports-auth", DefaultAccessTokenTTL, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := NewVerifierHS256(testSecret, "wesports-auth", []string{AudienceAccess})
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "access", got.TokenType)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestHS256_RejectsWrongSecret(t *testing.T) {
	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)

	now := time.Now().UTC()
	token, err := signer.Sign(NewAccessClaims("user-1", "a@b.c", "wesports-auth", time.Minute, now))
	require.NoError(t, err)

	verifier := NewVerifierHS256([]byte("a-completely-different-secret-value"), "wesports-auth", nil)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256_RejectsWrongAudience(t *testing.T) {
	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)

	now := time.Now().UTC()

	// A registration token must not pass an access-token verifier
	token, err := signer.Sign(NewRegistrationClaims("user-1", "a@b.c", NewJTI(), "wesports-auth", time.Minute, now))
	require.NoError(t, err)

	verifier := NewVerifierHS256(testSecret, "wesports-auth", []string{AudienceAccess})
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrAudience)
}

func TestHS256_RejectsExpired(t *testing.T) {
	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	token, err := signer.Sign(NewAccessClaims("user-1", "a@b.c", "wesports-auth", time.Minute, past))
	require.NoError(t, err)

	verifier := NewVerifierHS256(testSecret, "wesports-auth", []string{AudienceAccess})
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256_RejectsGarbage(t *testing.T) {
	verifier := NewVerifierHS256(testSecret, "", nil)

	_, err := verifier.Verify("not.a.jwt")
	require.Error(t, err)

	_, err = verifier.Verify("")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestHS256_EmptySecret(t *testing.T) {
	_, err := NewSignerHS256(nil)
	require.Error(t, err)
}

func TestRefreshClaims_Shape(t *testing.T) {
	now := time.Now().UTC()
	claims := NewRefreshClaims("user-1", "alice@example.com", "wesports-auth", DefaultRefreshTokenTTL, now)

	// Refresh tokens carry the email as subject and the user id as a claim
	require.Equal(t, "alice@example.com", claims.Subject)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "refresh", claims.TokenType)
	require.WithinDuration(t, now.Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestRegistrationClaims_BindsJTI(t *testing.T) {
	now := time.Now().UTC()
	jti := NewJTI()
	claims := NewRegistrationClaims("user-1", "alice@example.com", jti, "wesports-auth", DefaultRegistrationTokenTTL, now)

	require.Equal(t, jti, claims.ID)
	require.Equal(t, "user-1", claims.Subject)
	require.WithinDuration(t, now.Add(5*time.Minute), claims.ExpiresAt.Time, time.Second)
}
