package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/cryptox"
	"github.com/wesports/auth/pkg/slogx"
)

// LoginService authenticates email+password accounts.
type LoginService struct {
	Store  store.Store
	Tokens *TokenService
}

func NewLoginService(st store.Store, tokens *TokenService) *LoginService {
	return &LoginService{Store: st, Tokens: tokens}
}

// Login checks the credential ladder in order: account existence, email
// verification, password setup, credential active flag, then the password
// itself. Unknown accounts and wrong passwords share one message so the
// endpoint does not leak which emails are registered.
func (s *LoginService) Login(ctx context.Context, rawEmail, password string) (authsdk.AuthResponse, error) {
	log := slogx.FromContext(ctx)

	addr, err := validateEmail(rawEmail)
	if err != nil {
		return authsdk.AuthResponse{}, err
	}
	if password == "" {
		return authsdk.AuthResponse{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authsdk.AuthResponse{}, ErrInvalidCredentials
		}
		return authsdk.AuthResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if !user.EmailVerified {
		return authsdk.AuthResponse{}, ErrEmailNotVerified
	}
	if !user.HasPassword() {
		return authsdk.AuthResponse{}, ErrRegistrationIncomplete
	}

	method, err := s.Store.AuthMethods().GetAuthMethod(ctx, user.ID, domain.AuthTypeLocal)
	switch {
	case err == nil:
		if !method.Active {
			log.Warn("login on inactive credential", "user_id", user.ID)
			return authsdk.AuthResponse{}, ErrAccountInactive
		}
	case errors.Is(err, store.ErrNotFound):
		return authsdk.AuthResponse{}, ErrRegistrationIncomplete
	default:
		return authsdk.AuthResponse{}, fmt.Errorf("lookup auth method: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("password mismatch", "user_id", user.ID)
		return authsdk.AuthResponse{}, ErrInvalidCredentials
	}

	pair, err := s.Tokens.MintPair(user)
	if err != nil {
		return authsdk.AuthResponse{}, err
	}

	resp := authsdk.AuthResponse{
		Status:       authsdk.StatusSuccess,
		Message:      "Login successful",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
		User:         userInfo(user),
	}
	if !user.Step.IsCompleted() {
		resp.NextStep = string(user.Step)
	}

	log.Info("login succeeded", "user_id", user.ID)
	return resp, nil
}
