package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/email"
	"github.com/wesports/auth/internal/auth/rate"
	"github.com/wesports/auth/internal/auth/revoke"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/internal/auth/store/drivers/sqlite"
)

const testIssuer = "wesports-auth"

var testSecret = []byte("test-secret-0123456789abcdef0123")

type testEnv struct {
	Store        store.Store
	Limiter      *rate.MemoryLimiter
	Revocations  *revoke.MemoryList
	Tokens       *TokenService
	Registration *RegistrationService
	Login        *LoginService
	Onboarding   *OnboardingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	require.NoError(t, NewBootstrapService(st).EnsureSeedData(context.Background()))

	limiter := rate.NewMemoryLimiter()
	revocations := revoke.NewMemoryList()

	tokens, err := NewTokenService(testSecret, st, revocations, testIssuer)
	require.NoError(t, err)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailer := email.NewLogSender(quiet)

	return &testEnv{
		Store:        st,
		Limiter:      limiter,
		Revocations:  revocations,
		Tokens:       tokens,
		Registration: NewRegistrationService(st, limiter, mailer, tokens),
		Login:        NewLoginService(st, tokens),
		Onboarding:   NewOnboardingService(st),
	}
}

// register walks an address through start + verify + password setup and
// returns the user id.
func (e *testEnv) register(t *testing.T, addr, password string) string {
	t.Helper()
	ctx := context.Background()

	_, err := e.Registration.Start(ctx, addr, "en")
	require.NoError(t, err)

	verifyResp, err := e.Registration.VerifyOTP(ctx, addr, e.currentCode(t, addr))
	require.NoError(t, err)

	authResp, err := e.Registration.SetupPassword(ctx, verifyResp.RegistrationToken, password, password)
	require.NoError(t, err)
	return authResp.User.ID
}

// currentCode reads the pending verification code straight from storage,
// standing in for the email the user would receive.
func (e *testEnv) currentCode(t *testing.T, addr string) string {
	t.Helper()
	otp, err := e.Store.OTPs().GetOTP(context.Background(),
		domain.SubjectID(addr), domain.PurposeRegistration)
	require.NoError(t, err)
	return otp.Code
}

// ghostUser is a user shape that exists nowhere in storage.
func ghostUser() domain.User {
	return domain.User{
		ID:    domain.SubjectID("ghost@example.com"),
		Email: "ghost@example.com",
	}
}
