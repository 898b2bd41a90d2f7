package authsdk

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Session is an authenticated client bound to one account's token pair. It
// refreshes the access token automatically shortly before expiry. Safe for
// concurrent use.
type Session struct {
	client *SDKClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

func newSession(c *SDKClient, resp AuthResponse) *Session {
	expiresAt := time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	expiresAt = expiresAt.Add(-30 * time.Second) // refresh a little early

	return &Session{
		client:       c,
		accessToken:  resp.AccessToken,
		refreshToken: resp.RefreshToken,
		expiresAt:    expiresAt,
	}
}

// Tokens returns the current token pair, e.g. for persisting across
// restarts.
func (s *Session) Tokens() (accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// getValidToken returns a usable access token, rotating the pair first when
// the current one is about to expire.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	resp, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return "", fmt.Errorf("session refresh failed: %w", err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.expiresAt = time.Now().
		Add(time.Duration(resp.ExpiresIn) * time.Second).
		Add(-30 * time.Second)

	return s.accessToken, nil
}

// Logout revokes the session's refresh token. The session is unusable
// afterwards.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.refreshToken
	s.mu.Unlock()

	return s.client.Logout(ctx, refresh)
}

// SelectRole records the platform role. Only "PLAYER" is accepted.
func (s *Session) SelectRole(ctx context.Context, role string) (StepResponse, error) {
	var out StepResponse
	err := s.postJSON(ctx, "/v1/auth/select-role", SelectRoleRequest{Role: role}, &out)
	return out, err
}

// SubmitProfile saves the profile form fields.
func (s *Session) SubmitProfile(ctx context.Context, req ProfileFormRequest) (StepResponse, error) {
	var out StepResponse
	err := s.postJSON(ctx, "/v1/auth/profile-form", req, &out)
	return out, err
}

// OnboardingStatus reports wizard progress.
func (s *Session) OnboardingStatus(ctx context.Context) (OnboardingStatus, error) {
	var out OnboardingStatus
	err := s.getJSON(ctx, "/v1/onboarding/status", &out)
	return out, err
}

// SetGender records the gender ("MALE", "FEMALE" or "OTHER").
func (s *Session) SetGender(ctx context.Context, gender string) (StepResponse, error) {
	var out StepResponse
	err := s.postJSON(ctx, "/v1/onboarding/gender", GenderRequest{Gender: gender}, &out)
	return out, err
}

// SetPosition records the playing position.
func (s *Session) SetPosition(ctx context.Context, position string) (StepResponse, error) {
	var out StepResponse
	err := s.postJSON(ctx, "/v1/onboarding/position", PositionRequest{Position: position}, &out)
	return out, err
}

// SetCategory records the competition category.
func (s *Session) SetCategory(ctx context.Context, category string) (StepResponse, error) {
	var out StepResponse
	err := s.postJSON(ctx, "/v1/onboarding/category", CategoryRequest{Category: category}, &out)
	return out, err
}

// CompleteOnboarding marks the wizard finished.
func (s *Session) CompleteOnboarding(ctx context.Context) (StepResponse, error) {
	var out StepResponse
	err := s.postJSON(ctx, "/v1/onboarding/complete", nil, &out)
	return out, err
}
