package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the WeSports authentication service. It provides
// the unauthenticated sign-up and login operations and can create
// authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register starts email sign-up: the service emails a 6-digit code to the
// address. language is an optional hint like "fr".
func (c *SDKClient) Register(ctx context.Context, email, language string) (StepResponse, error) {
	var out StepResponse
	err := c.postJSON(ctx, "/v1/auth/register",
		RegisterStartRequest{Email: email, Language: language}, &out)
	return out, err
}

// VerifyOTP submits the emailed code. The returned registration token is
// needed for SetupPassword and expires after five minutes.
func (c *SDKClient) VerifyOTP(ctx context.Context, email, otp string) (VerifyOTPResponse, error) {
	var out VerifyOTPResponse
	err := c.postJSON(ctx, "/v1/auth/verify-otp",
		VerifyOTPRequest{Email: email, OTP: otp}, &out)
	return out, err
}

// SetupPassword finishes credential creation and returns an authenticated
// Session alongside the raw response.
func (c *SDKClient) SetupPassword(ctx context.Context, registrationToken, password, confirm string) (*Session, AuthResponse, error) {
	var out AuthResponse
	err := c.postJSON(ctx, "/v1/auth/setup-password", SetupPasswordRequest{
		Password:          password,
		ConfirmPassword:   confirm,
		RegistrationToken: registrationToken,
	}, &out)
	if err != nil {
		return nil, AuthResponse{}, err
	}
	return newSession(c, out), out, nil
}

// Login authenticates an existing account and returns an authenticated
// Session alongside the raw response.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, AuthResponse, error) {
	var out AuthResponse
	err := c.postJSON(ctx, "/v1/auth/login",
		LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, AuthResponse{}, err
	}
	return newSession(c, out), out, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// revoked by the exchange.
func (c *SDKClient) Refresh(ctx context.Context, refreshToken string) (AuthResponse, error) {
	var out AuthResponse
	err := c.postJSON(ctx, "/v1/auth/refresh",
		RefreshRequest{RefreshToken: refreshToken}, &out)
	return out, err
}

// Logout revokes a refresh token. Succeeds even for dead tokens.
func (c *SDKClient) Logout(ctx context.Context, refreshToken string) error {
	var out StepResponse
	return c.postJSON(ctx, "/v1/auth/logout",
		LogoutRequest{RefreshToken: refreshToken}, &out)
}

// NewSessionFromTokens rebuilds a Session from stored tokens, e.g. after a
// process restart. The session still auto-refreshes.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string, expiresIn int64) *Session {
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)
	expiresAt = expiresAt.Add(-30 * time.Second) // 30 second buffer

	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		expiresAt:    expiresAt,
	}
}

// Languages lists the active platform languages.
func (c *SDKClient) Languages(ctx context.Context) ([]Language, error) {
	var out []Language
	err := c.getJSON(ctx, "/v1/languages", &out)
	return out, err
}

// Positions lists the selectable playing positions.
func (c *SDKClient) Positions(ctx context.Context) ([]string, error) {
	var out []string
	err := c.getJSON(ctx, "/v1/onboarding/positions", &out)
	return out, err
}

// Categories lists the selectable competition categories.
func (c *SDKClient) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.getJSON(ctx, "/v1/onboarding/categories", &out)
	return out, err
}

// Livez checks the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.getJSON(ctx, "/livez", &out)
	return out, err
}

// Readyz checks the readiness probe.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.getJSON(ctx, "/readyz", &out)
	return out, err
}
