package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wesports/auth/pkg/authsdk"
)

// TestRegistrationWizard walks the complete sign-up flow:
// 1. Request a verification code and read it from the mail sink
// 2. Verify the code and receive a registration token
// 3. Set a password and receive an authenticated session
// 4. Select the PLAYER role and submit the profile form
// 5. Finish onboarding and confirm the account is COMPLETED
func TestRegistrationWizard(t *testing.T) {
	stack, cleanup := setupStack(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)
	email := uniqueEmail("wizard")

	session := registerAccount(t, stack, client, email)
	completeRegistration(t, session)

	status, err := session.OnboardingStatus(t.Context())
	require.NoError(t, err)
	require.True(t, status.EmailVerified)
	require.True(t, status.PasswordSet)
	require.True(t, status.RoleSelected)
	require.True(t, status.ProfileCompleted)
	require.Equal(t, "ONBOARDING", status.CurrentStep)

	_, err = session.SetGender(t.Context(), "FEMALE")
	require.NoError(t, err)
	_, err = session.SetPosition(t.Context(), "MIDFIELDER")
	require.NoError(t, err)
	_, err = session.SetCategory(t.Context(), "AMATEUR")
	require.NoError(t, err)

	completeResp, err := session.CompleteOnboarding(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Onboarding completed successfully", completeResp.Message)

	status, err = session.OnboardingStatus(t.Context())
	require.NoError(t, err)
	require.Equal(t, "COMPLETED", status.CurrentStep)
	require.True(t, status.Completed)
}

// TestRegisterExistingAccount verifies that a completed account can't be
// re-registered and that the response doesn't leak more than the conflict.
func TestRegisterExistingAccount(t *testing.T) {
	stack, cleanup := setupStack(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)
	email := uniqueEmail("existing")

	registerAccount(t, stack, client, email)

	_, err := client.Register(t.Context(), email, "en")
	assertAPIStatus(t, err, http.StatusConflict, "Re-registering a credentialed account")
}

// TestVerifyWrongCode checks the attempt budget: each wrong guess reports the
// remaining attempts and the right code still works before the budget runs out.
func TestVerifyWrongCode(t *testing.T) {
	stack, cleanup := setupStack(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)
	email := uniqueEmail("wrongcode")

	_, err := client.Register(t.Context(), email, "en")
	require.NoError(t, err)

	code := fetchOTP(t, stack, email)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err = client.VerifyOTP(t.Context(), email, wrong)
	assertAPIStatus(t, err, http.StatusBadRequest, "Wrong verification code")
	require.Contains(t, err.Error(), "2 attempts remaining")

	verifyResp, err := client.VerifyOTP(t.Context(), email, code)
	require.NoError(t, err, "Correct code should still work within the budget")
	require.NotEmpty(t, verifyResp.RegistrationToken)
}

// TestRegistrationTokenSingleUse verifies the registration token can't set a
// password twice.
func TestRegistrationTokenSingleUse(t *testing.T) {
	stack, cleanup := setupStack(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)
	email := uniqueEmail("singleuse")

	_, err := client.Register(t.Context(), email, "en")
	require.NoError(t, err)

	code := fetchOTP(t, stack, email)

	verifyResp, err := client.VerifyOTP(t.Context(), email, code)
	require.NoError(t, err)

	_, _, err = client.SetupPassword(t.Context(), verifyResp.RegistrationToken, testPassword, testPassword)
	require.NoError(t, err)

	_, _, err = client.SetupPassword(t.Context(), verifyResp.RegistrationToken, testPassword, testPassword)
	assertAPIStatus(t, err, http.StatusUnauthorized, "Replaying a consumed registration token")
}

// TestRegisterResendsCode verifies a second register call for a pending
// account issues a fresh code that supersedes the first.
func TestRegisterResendsCode(t *testing.T) {
	stack, cleanup := setupStack(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)
	email := uniqueEmail("resend")

	_, err := client.Register(t.Context(), email, "en")
	require.NoError(t, err)
	first := fetchOTP(t, stack, email)

	clearMailbox(t, stack)

	_, err = client.Register(t.Context(), email, "en")
	require.NoError(t, err)
	second := fetchOTP(t, stack, email)

	if first != second {
		_, err = client.VerifyOTP(t.Context(), email, first)
		assertAPIStatus(t, err, http.StatusBadRequest, "Superseded code")
	}

	verifyResp, err := client.VerifyOTP(t.Context(), email, second)
	require.NoError(t, err)
	require.NotEmpty(t, verifyResp.RegistrationToken)
}

// TestSelectRoleRejectsNonPlayer confirms only the PLAYER role is accepted.
func TestSelectRoleRejectsNonPlayer(t *testing.T) {
	stack, cleanup := setupStack(t)
	defer cleanup()

	client := authsdk.NewSDKClient(stack.BaseURL)
	session := registerAccount(t, stack, client, uniqueEmail("coach"))

	_, err := session.SelectRole(t.Context(), "COACH")
	assertAPIStatus(t, err, http.StatusBadRequest, "Unsupported role")
	require.Contains(t, err.Error(), "For now we handle only player")
}
