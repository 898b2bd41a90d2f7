package auth_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wesports/auth/pkg/authsdk"
)

/*
 * Common constants and helper functions for auth service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName    = "wesports-auth-test:latest"
	mailhogImageName = "mailhog/mailhog:v1.0.1"
	redisImageName   = "redis:7-alpine"

	testJWTSecret = "e2e-test-secret-0123456789abcdef"
	testPassword  = "Player123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Auth Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Auth Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/auth/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// testStack is the running set of containers one test talks to: the auth
// service itself, a MailHog SMTP sink for reading OTP emails, and a Redis
// instance backing the abuse limiter and refresh token revocation list.
type testStack struct {
	BaseURL    string
	MailhogURL string
}

// setupStack starts MailHog, Redis and the auth service on a shared network
// and returns the stack plus a cleanup function. HTTP rate limits are relaxed
// so tests can make rapid requests without tripping the per-IP limiter; the
// per-email OTP budgets stay at production values.
func setupStack(t *testing.T) (*testStack, func()) {
	t.Helper()
	return startStack(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupStackWithDefaultRateLimits starts the stack with PRODUCTION rate
// limits. Only for tests that verify rate limiting itself works.
func setupStackWithDefaultRateLimits(t *testing.T) (*testStack, func()) {
	t.Helper()
	return startStack(t, nil)
}

func startStack(t *testing.T, extraEnv map[string]string) (*testStack, func()) {
	t.Helper()
	ctx := context.Background()

	net, err := network.New(ctx)
	require.NoError(t, err)

	mailhog, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mailhogImageName,
			ExposedPorts: []string{"1025/tcp", "8025/tcp"},
			Networks:     []string{net.Name},
			NetworkAliases: map[string][]string{
				net.Name: {"mailhog"},
			},
			WaitingFor: wait.ForListeningPort("1025/tcp").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	redis, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImageName,
			ExposedPorts: []string{"6379/tcp"},
			Networks:     []string{net.Name},
			NetworkAliases: map[string][]string{
				net.Name: {"redis"},
			},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	env := map[string]string{
		"AUTH_JWT_SECRET":    testJWTSecret,
		"AUTH_ISSUER":        "wesports-auth",
		"AUTH_DATABASE_FILE": "/tmp/auth.db",
		"REDIS_ADDR":         "redis:6379",
		"SMTP_HOST":          "mailhog",
		"SMTP_PORT":          "1025",
		"SMTP_FROM":          "no-reply@wesports.example",
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
		// Tests talk plain HTTP, so Secure cookies would never round-trip.
		"AUTH_SECURE_COOKIES": "false",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	auth, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Networks:     []string{net.Name},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	authPort, err := auth.MappedPort(ctx, "8080")
	require.NoError(t, err)
	authHost, err := auth.Host(ctx)
	require.NoError(t, err)

	mailhogPort, err := mailhog.MappedPort(ctx, "8025")
	require.NoError(t, err)
	mailhogHost, err := mailhog.Host(ctx)
	require.NoError(t, err)

	stack := &testStack{
		BaseURL:    fmt.Sprintf("http://%s:%s", authHost, authPort.Port()),
		MailhogURL: fmt.Sprintf("http://%s:%s", mailhogHost, mailhogPort.Port()),
	}

	cleanup := func() {
		for _, c := range []testcontainers.Container{auth, redis, mailhog} {
			if err := c.Terminate(ctx); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		}
		if err := net.Remove(ctx); err != nil {
			t.Logf("failed to remove network: %v", err)
		}
	}

	return stack, cleanup
}

var otpPattern = regexp.MustCompile(`\b(\d{6})\b`)

// mailhogSearchResponse is the subset of MailHog's search API we read.
type mailhogSearchResponse struct {
	Total int `json:"total"`
	Items []struct {
		Content struct {
			Body string `json:"Body"`
		} `json:"Content"`
	} `json:"items"`
}

// fetchOTP polls MailHog for the most recent verification email sent to the
// address and extracts the 6-digit code from its body. Delivery is
// asynchronous so this retries for a few seconds.
func fetchOTP(t *testing.T, stack *testStack, email string) string {
	t.Helper()

	searchURL := fmt.Sprintf("%s/api/v2/search?kind=to&query=%s", stack.MailhogURL, email)

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(searchURL)
		if err == nil {
			var result mailhogSearchResponse
			decodeErr := json.NewDecoder(resp.Body).Decode(&result)
			resp.Body.Close()

			if decodeErr == nil && result.Total > 0 {
				// Items are newest-first; undo quoted-printable soft breaks
				// before matching so the code can't be split across lines.
				body := result.Items[0].Content.Body
				body = strings.ReplaceAll(body, "=\r\n", "")
				body = strings.ReplaceAll(body, "=\n", "")

				if match := otpPattern.FindStringSubmatch(body); match != nil {
					return match[1]
				}
			}
		}
		time.Sleep(250 * time.Millisecond)
	}

	t.Fatalf("no verification email for %s arrived in time", email)
	return ""
}

// clearMailbox deletes all captured messages so the next fetchOTP call can't
// pick up a stale email.
func clearMailbox(t *testing.T, stack *testStack) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, stack.MailhogURL+"/api/v1/messages", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
}

// registerAccount walks the wizard through password setup: request a code,
// read it from MailHog, verify it and set the password. Returns the
// authenticated session.
func registerAccount(t *testing.T, stack *testStack, client *authsdk.SDKClient, email string) *authsdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := client.Register(ctx, email, "en")
	require.NoError(t, err)

	code := fetchOTP(t, stack, email)

	verifyResp, err := client.VerifyOTP(ctx, email, code)
	require.NoError(t, err)
	require.NotEmpty(t, verifyResp.RegistrationToken)

	session, authResp, err := client.SetupPassword(ctx, verifyResp.RegistrationToken, testPassword, testPassword)
	require.NoError(t, err)
	assertAuthResponse(t, authResp)

	return session
}

// completeRegistration takes a freshly credentialed session through role
// selection and the profile form, landing the account on the onboarding step.
func completeRegistration(t *testing.T, session *authsdk.Session) {
	t.Helper()
	ctx := context.Background()

	_, err := session.SelectRole(ctx, "PLAYER")
	require.NoError(t, err)

	_, err = session.SubmitProfile(ctx, authsdk.ProfileFormRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Birthday:        "2001-12-31",
		Phone:           "+33123456789",
		Nationality:     "FR",
		Residence:       "Paris",
		SpokenLanguages: []string{"fr", "en"},
	})
	require.NoError(t, err)
}

// assertAuthResponse verifies a token-bearing response has all required fields.
func assertAuthResponse(t *testing.T, resp authsdk.AuthResponse) {
	t.Helper()
	require.NotEmpty(t, resp.AccessToken, "Access token should not be empty")
	require.NotEmpty(t, resp.RefreshToken, "Refresh token should not be empty")
	require.Equal(t, "Bearer", resp.TokenType, "Token type should be Bearer")
	require.Positive(t, resp.ExpiresIn, "ExpiresIn should be set")
}

// assertAPIStatus checks that an error is an APIError with the given HTTP
// status code.
func assertAPIStatus(t *testing.T, err error, statusCode int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, authsdk.IsStatus(err, statusCode),
		"%s - expected HTTP %d, got: %v", context, statusCode, err)
}

// uniqueEmail generates a test address that won't collide with other tests
// sharing the same container.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
