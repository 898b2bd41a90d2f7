package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/revoke"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/jwtx"
	"github.com/wesports/auth/pkg/slogx"
)

// TokenService mints and rotates the three token shapes: short-lived access
// tokens, the registration bridge token, and long-lived refresh tokens.
// Refresh rotation is mandatory; the old token is fingerprinted into the
// revocation list for its remaining lifetime.
type TokenService struct {
	Signer      jwtx.Signer
	Store       store.Store
	Revocations revoke.List
	Issuer      string

	AccessTTL       time.Duration
	RegistrationTTL time.Duration
	RefreshTTL      time.Duration

	accessVerifier       jwtx.Verifier
	registrationVerifier jwtx.Verifier
	refreshVerifier      jwtx.Verifier
}

// NewTokenService wires an HS256 signer and per-audience verifiers around a
// single shared secret.
func NewTokenService(secret []byte, st store.Store, revocations revoke.List, issuer string) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}

	return &TokenService{
		Signer:          signer,
		Store:           st,
		Revocations:     revocations,
		Issuer:          issuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RegistrationTTL: jwtx.DefaultRegistrationTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,

		accessVerifier:       jwtx.NewVerifierHS256(secret, issuer, []string{jwtx.AudienceAccess}),
		registrationVerifier: jwtx.NewVerifierHS256(secret, issuer, []string{jwtx.AudienceRegistration}),
		refreshVerifier:      jwtx.NewVerifierHS256(secret, issuer, []string{jwtx.AudienceRefresh}),
	}, nil
}

// AccessVerifier exposes the access-token verifier for the authn middleware.
func (s *TokenService) AccessVerifier() jwtx.Verifier { return s.accessVerifier }

// MintRegistration signs the bridge token handed out after OTP verification.
// The jti is bound to the stored verification marker.
func (s *TokenService) MintRegistration(user domain.User, jti string) (string, error) {
	claims := jwtx.NewRegistrationClaims(user.ID, user.Email, jti, s.Issuer, s.RegistrationTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign registration token: %w", err)
	}
	return token, nil
}

// VerifyRegistration validates a registration token and returns its claims.
// All verification failures collapse into ErrInvalidRegistrationToken.
func (s *TokenService) VerifyRegistration(token string) (jwtx.Claims, error) {
	claims, err := s.registrationVerifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, ErrInvalidRegistrationToken
	}
	return claims, nil
}

// MintPair signs a fresh access and refresh token pair for the user.
func (s *TokenService) MintPair(user domain.User) (domain.TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.Signer.Sign(jwtx.NewAccessClaims(user.ID, user.Email, s.Issuer, s.AccessTTL, now))
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := s.Signer.Sign(jwtx.NewRefreshClaims(user.ID, user.Email, s.Issuer, s.RefreshTTL, now))
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.AccessTTL.Seconds()),
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair and revokes the old
// token. Every acceptance rotates; a replayed token fails the revocation
// check no matter how much lifetime it has left.
func (s *TokenService) Refresh(ctx context.Context, rawToken string) (domain.TokenPair, domain.User, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.refreshVerifier.Verify(rawToken)
	if err != nil {
		log.Debug("refresh token rejected", "error", err)
		return domain.TokenPair{}, domain.User{}, ErrInvalidRefreshToken
	}

	revoked, err := s.Revocations.IsRevoked(ctx, rawToken)
	if err != nil {
		return domain.TokenPair{}, domain.User{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		log.Warn("revoked refresh token replayed", "user_id", claims.UserID)
		return domain.TokenPair{}, domain.User{}, ErrInvalidRefreshToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, domain.User{}, ErrInvalidRefreshToken
		}
		return domain.TokenPair{}, domain.User{}, fmt.Errorf("load user: %w", err)
	}

	pair, err := s.MintPair(user)
	if err != nil {
		return domain.TokenPair{}, domain.User{}, err
	}

	if err := s.Revocations.Revoke(ctx, rawToken, s.remainingTTL(claims)); err != nil {
		// The new pair is already minted; losing the revocation entry only
		// shortens the rotation guarantee, so log and keep going.
		log.Error("failed to revoke rotated refresh token", "error", err, "user_id", user.ID)
	}

	log.Info("refresh token rotated", "user_id", user.ID)
	return pair, user, nil
}

// Logout revokes a refresh token. Unparseable or already-expired tokens are
// treated as success so logout stays idempotent.
func (s *TokenService) Logout(ctx context.Context, rawToken string) error {
	log := slogx.FromContext(ctx)

	claims, err := s.refreshVerifier.Verify(rawToken)
	if err != nil {
		log.Debug("logout with unusable refresh token", "error", err)
		return nil
	}

	if err := s.Revocations.Revoke(ctx, rawToken, s.remainingTTL(claims)); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}

	log.Info("refresh token revoked on logout", "user_id", claims.UserID)
	return nil
}

func (s *TokenService) remainingTTL(claims jwtx.Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return s.RefreshTTL
	}
	return time.Until(claims.ExpiresAt.Time)
}
