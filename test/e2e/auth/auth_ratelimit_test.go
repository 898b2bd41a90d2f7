package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wesports/auth/pkg/authsdk"
)

// TestStrictRateLimitOnLogin verifies the per-IP limiter on authentication
// endpoints. Uses production limits, so every request in this test counts
// against the same strict budget.
func TestStrictRateLimitOnLogin(t *testing.T) {
	stack, cleanup := setupStackWithDefaultRateLimits(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)

	// The strict profile allows 5 requests per minute per IP. Burn the
	// budget with failing logins, then confirm the 6th is throttled rather
	// than evaluated.
	var limited bool
	for range 10 {
		_, _, err := client.Login(t.Context(), "nobody@example.com", "wrong")
		require.Error(t, err)

		if authsdk.IsStatus(err, http.StatusTooManyRequests) {
			limited = true
			break
		}
		require.True(t, authsdk.IsStatus(err, http.StatusUnauthorized),
			"Pre-limit failures should be 401, got: %v", err)
	}

	require.True(t, limited, "Login should get rate limited within 10 rapid attempts")
}

// TestOTPRequestBudgetPerEmail verifies the per-address OTP budget, which is
// independent of the HTTP limiter (this stack runs with relaxed HTTP limits).
func TestOTPRequestBudgetPerEmail(t *testing.T) {
	stack, cleanup := setupStack(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)
	email := uniqueEmail("budget")

	for range 5 {
		_, err := client.Register(t.Context(), email, "en")
		require.NoError(t, err)
	}

	_, err := client.Register(t.Context(), email, "en")
	assertAPIStatus(t, err, http.StatusTooManyRequests, "Sixth code request for one address")

	// Other addresses are unaffected.
	_, err = client.Register(t.Context(), uniqueEmail("unaffected"), "en")
	require.NoError(t, err)
}
