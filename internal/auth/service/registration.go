package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/email"
	"github.com/wesports/auth/internal/auth/rate"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/cryptox"
	"github.com/wesports/auth/pkg/idx"
	"github.com/wesports/auth/pkg/jwtx"
	"github.com/wesports/auth/pkg/slogx"
)

// RegistrationService drives the sign-up wizard: OTP issuance and
// verification, password setup, role selection and the profile form.
type RegistrationService struct {
	Store   store.Store
	Limiter rate.Limiter
	Mailer  email.Sender
	Tokens  *TokenService
}

func NewRegistrationService(st store.Store, limiter rate.Limiter, mailer email.Sender, tokens *TokenService) *RegistrationService {
	return &RegistrationService{Store: st, Limiter: limiter, Mailer: mailer, Tokens: tokens}
}

// Start issues a fresh 6-digit code for the email and sends it out of band.
// Addresses that already finished registration are bounced to login; a
// pending registration just gets a replacement code.
func (s *RegistrationService) Start(ctx context.Context, rawEmail, languageHint string) (authsdk.StepResponse, error) {
	log := slogx.FromContext(ctx)

	addr, err := validateEmail(rawEmail)
	if err != nil {
		return authsdk.StepResponse{}, err
	}

	allowed, err := s.Limiter.AllowOTPRequest(ctx, addr)
	if err != nil {
		return authsdk.StepResponse{}, fmt.Errorf("otp rate limit: %w", err)
	}
	if !allowed {
		log.Warn("otp request budget exhausted", "email", addr)
		return authsdk.StepResponse{}, ErrTooManyOTPRequests
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, addr)
	switch {
	case err == nil:
		if user.HasPassword() {
			return authsdk.StepResponse{}, ErrAccountExists
		}
	case errors.Is(err, store.ErrNotFound):
		// first contact, fine
	default:
		return authsdk.StepResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	otp, err := domain.NewOTP(domain.SubjectID(addr), languageHint)
	if err != nil {
		return authsdk.StepResponse{}, fmt.Errorf("generate code: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.OTPs().ReplaceOTP(ctx, *otp)
	})
	if err != nil {
		return authsdk.StepResponse{}, fmt.Errorf("store code: %w", err)
	}

	// Delivery must not block or fail the request; a lost email is fixed by
	// requesting another code.
	go func(code, lang string) {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if err := s.Mailer.SendOTP(sendCtx, addr, code, lang); err != nil {
			log.Error("otp email delivery failed", "error", err, "email", addr)
		}
	}(otp.Code, languageHint)

	log.Info("verification code issued", "email", addr)
	return authsdk.StepResponse{
		Status:   authsdk.StatusSuccess,
		Message:  "Verification code sent to your email",
		NextStep: string(domain.StepEmailVerification),
	}, nil
}

// VerifyOTP checks a submitted code. On success it consumes the code, creates
// the account row if this is a first verification, leaves an EMAIL_VERIFIED
// marker and mints the registration token bound to that marker.
func (s *RegistrationService) VerifyOTP(ctx context.Context, rawEmail, code string) (authsdk.VerifyOTPResponse, error) {
	log := slogx.FromContext(ctx)

	addr, err := validateEmail(rawEmail)
	if err != nil {
		return authsdk.VerifyOTPResponse{}, err
	}
	subject := domain.SubjectID(addr)

	existing, err := s.Store.Users().GetUserByEmail(ctx, addr)
	haveUser := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return authsdk.VerifyOTPResponse{}, fmt.Errorf("lookup user: %w", err)
	}
	if haveUser {
		if existing.HasPassword() {
			return authsdk.VerifyOTPResponse{}, ErrAccountExists
		}
		// Already-verified accounts re-running the verify step burn the
		// tighter reverify budget.
		allowed, err := s.Limiter.AllowReverify(ctx, addr)
		if err != nil {
			return authsdk.VerifyOTPResponse{}, fmt.Errorf("reverify rate limit: %w", err)
		}
		if !allowed {
			log.Warn("reverify budget exhausted", "email", addr)
			return authsdk.VerifyOTPResponse{}, ErrTooManyReverifyAttempts
		}
	}

	otp, err := s.Store.OTPs().GetOTP(ctx, subject, domain.PurposeRegistration)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authsdk.VerifyOTPResponse{}, ErrOTPNotFound
		}
		return authsdk.VerifyOTPResponse{}, fmt.Errorf("load code: %w", err)
	}

	now := time.Now().UTC()
	if otp.ExpiresIn(now) == 0 || otp.RemainingAttempts() == 0 {
		// Expired and attempt-exhausted rows are dead either way; discard on
		// contact so the next request starts clean.
		if err := s.Store.OTPs().DeleteOTP(ctx, subject, domain.PurposeRegistration); err != nil {
			return authsdk.VerifyOTPResponse{}, fmt.Errorf("discard dead code: %w", err)
		}
		return authsdk.VerifyOTPResponse{}, ErrOTPInvalidOrExpired
	}

	if !otp.Verify(code) {
		if err := s.Store.OTPs().UpdateAttempts(ctx, otp.ID, otp.Attempts); err != nil {
			return authsdk.VerifyOTPResponse{}, fmt.Errorf("record attempt: %w", err)
		}
		log.Info("verification code mismatch", "email", addr, "remaining", otp.RemainingAttempts())
		return authsdk.VerifyOTPResponse{}, ErrInvalidOTP(otp.RemainingAttempts())
	}

	jti := jwtx.NewJTI()
	var user domain.User

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.OTPs().DeleteOTP(ctx, subject, domain.PurposeRegistration); err != nil {
			return err
		}
		if err := tx.OTPs().ReplaceOTP(ctx, *domain.NewVerificationMarker(subject, jti)); err != nil {
			return err
		}

		if haveUser {
			user = existing
			return nil
		}

		user = domain.User{
			ID:            subject,
			Email:         addr,
			FirstName:     domain.PlaceholderFirstName,
			LastName:      domain.PlaceholderLastName,
			EmailVerified: true,
			LanguageID:    s.resolveLanguageID(ctx, tx, otp.LanguageHint),
			Step:          domain.StepPasswordSetup,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		return authsdk.VerifyOTPResponse{}, fmt.Errorf("finish verification: %w", err)
	}

	if haveUser {
		if err := s.Limiter.RecordReverify(ctx, addr); err != nil {
			log.Error("failed to record reverify", "error", err, "email", addr)
		}
	}

	token, err := s.Tokens.MintRegistration(user, jti)
	if err != nil {
		return authsdk.VerifyOTPResponse{}, err
	}

	log.Info("email verified", "user_id", user.ID)
	return authsdk.VerifyOTPResponse{
		Status:            authsdk.StatusSuccess,
		Message:           "Email verified successfully",
		RegistrationToken: token,
		NextStep:          string(domain.StepPasswordSetup),
	}, nil
}

// SetupPassword finishes credential creation using the registration token
// minted at OTP verification. The token's jti must still match the stored
// EMAIL_VERIFIED marker, which is consumed on success.
func (s *RegistrationService) SetupPassword(ctx context.Context, registrationToken, password, confirm string) (authsdk.AuthResponse, error) {
	log := slogx.FromContext(ctx)

	if len(password) < 8 {
		return authsdk.AuthResponse{}, ErrWeakPassword
	}
	if password != confirm {
		return authsdk.AuthResponse{}, ErrPasswordMismatch
	}
	if registrationToken == "" {
		return authsdk.AuthResponse{}, ErrInvalidRegistrationToken
	}

	claims, err := s.Tokens.VerifyRegistration(registrationToken)
	if err != nil {
		return authsdk.AuthResponse{}, err
	}

	marker, err := s.Store.OTPs().GetOTP(ctx, claims.Subject, domain.PurposeEmailVerified)
	if err != nil || marker.Code != claims.ID {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return authsdk.AuthResponse{}, fmt.Errorf("load marker: %w", err)
		}
		return authsdk.AuthResponse{}, ErrInvalidRegistrationToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authsdk.AuthResponse{}, ErrUserNotFound
		}
		return authsdk.AuthResponse{}, fmt.Errorf("load user: %w", err)
	}
	if !user.EmailVerified {
		return authsdk.AuthResponse{}, ErrEmailNotVerified
	}
	if user.HasPassword() {
		return authsdk.AuthResponse{}, ErrPasswordAlreadySet
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return authsdk.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	nextStep := user.Step.Advance(domain.StepRoleSelection)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}
		if err := tx.AuthMethods().CreateAuthMethod(ctx, domain.AuthMethod{
			ID:           idx.New().String(),
			UserID:       user.ID,
			Type:         domain.AuthTypeLocal,
			Email:        user.Email,
			PasswordHash: hash,
			Active:       true,
			CreatedAt:    time.Now().UTC(),
		}); err != nil {
			return err
		}
		if err := tx.Users().UpdateStep(ctx, user.ID, nextStep); err != nil {
			return err
		}
		return tx.OTPs().DeleteOTP(ctx, user.ID, domain.PurposeEmailVerified)
	})
	if err != nil {
		return authsdk.AuthResponse{}, fmt.Errorf("store credentials: %w", err)
	}

	user.PasswordHash = hash
	user.Step = nextStep

	pair, err := s.Tokens.MintPair(user)
	if err != nil {
		return authsdk.AuthResponse{}, err
	}

	log.Info("password configured", "user_id", user.ID)
	return authsdk.AuthResponse{
		Status:       authsdk.StatusSuccess,
		Message:      "Password set successfully",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
		User:         userInfo(user),
		NextStep:     string(nextStep),
	}, nil
}

// SelectRole records the platform role. Only PLAYER is accepted for now; the
// player profile row and the default sport join are created alongside it.
func (s *RegistrationService) SelectRole(ctx context.Context, userID, role string) (authsdk.StepResponse, error) {
	log := slogx.FromContext(ctx)

	if !strings.EqualFold(role, string(domain.RolePlayer)) {
		return authsdk.StepResponse{}, ErrUnsupportedRole
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authsdk.StepResponse{}, ErrUserNotFound
		}
		return authsdk.StepResponse{}, fmt.Errorf("load user: %w", err)
	}
	if !user.HasPassword() || user.Step.Before(domain.StepRoleSelection) {
		return authsdk.StepResponse{}, ErrRegistrationIncomplete
	}

	nextStep := user.Step.Advance(domain.StepProfileForm)
	now := time.Now().UTC()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Players().GetPlayerByID(ctx, user.ID); errors.Is(err, store.ErrNotFound) {
			if err := tx.Players().CreatePlayer(ctx, domain.Player{
				ID:        user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		sport, err := tx.Sports().GetSportByCode(ctx, domain.DefaultSportCode)
		if errors.Is(err, store.ErrNotFound) {
			sport = domain.Sport{
				ID:        idx.New().String(),
				Name:      "Football",
				Code:      domain.DefaultSportCode,
				CreatedAt: now,
			}
			if err := tx.Sports().CreateSport(ctx, sport); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		joined, err := tx.PlayerSports().HasPlayerSport(ctx, user.ID, sport.ID)
		if err != nil {
			return err
		}
		if !joined {
			if err := tx.PlayerSports().CreatePlayerSport(ctx, domain.PlayerSport{
				ID:        idx.New().String(),
				UserID:    user.ID,
				PlayerID:  user.ID,
				SportID:   sport.ID,
				CreatedAt: now,
			}); err != nil {
				return err
			}
		}

		if err := tx.Users().UpdateRole(ctx, user.ID, domain.RolePlayer); err != nil {
			return err
		}
		return tx.Users().UpdateStep(ctx, user.ID, nextStep)
	})
	if err != nil {
		return authsdk.StepResponse{}, fmt.Errorf("select role: %w", err)
	}

	log.Info("role selected", "user_id", user.ID, "role", domain.RolePlayer)
	return authsdk.StepResponse{
		Status:   authsdk.StatusSuccess,
		Message:  "Role selected successfully",
		NextStep: string(nextStep),
	}, nil
}

// SubmitProfile applies the profile form and advances the wizard to the
// onboarding step.
func (s *RegistrationService) SubmitProfile(ctx context.Context, userID string, req authsdk.ProfileFormRequest) (authsdk.StepResponse, error) {
	log := slogx.FromContext(ctx)

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		return authsdk.StepResponse{}, ErrNameRequired
	}

	var birthday *time.Time
	if req.Birthday != "" {
		t, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return authsdk.StepResponse{}, ErrInvalidBirthday
		}
		birthday = &t
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authsdk.StepResponse{}, ErrUserNotFound
		}
		return authsdk.StepResponse{}, fmt.Errorf("load user: %w", err)
	}
	if user.Step.Before(domain.StepProfileForm) {
		return authsdk.StepResponse{}, ErrRegistrationIncomplete
	}

	nextStep := user.Step.Advance(domain.StepOnboarding)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateProfile(ctx, user.ID, store.ProfileUpdate{
			FirstName:       first,
			LastName:        last,
			Birthday:        birthday,
			Phone:           strings.TrimSpace(req.Phone),
			Nationality:     strings.TrimSpace(req.Nationality),
			Residence:       strings.TrimSpace(req.Residence),
			SpokenLanguages: req.SpokenLanguages,
		}); err != nil {
			return err
		}
		return tx.Users().UpdateStep(ctx, user.ID, nextStep)
	})
	if err != nil {
		return authsdk.StepResponse{}, fmt.Errorf("save profile: %w", err)
	}

	log.Info("profile saved", "user_id", user.ID)
	return authsdk.StepResponse{
		Status:   authsdk.StatusSuccess,
		Message:  "Profile saved successfully",
		NextStep: string(nextStep),
	}, nil
}

// resolveLanguageID maps a language hint to a stored language id, falling
// back to English and then to the first active language. A miss returns ""
// rather than failing account creation.
func (s *RegistrationService) resolveLanguageID(ctx context.Context, st store.Store, hint string) string {
	if hint != "" {
		if l, err := st.Languages().GetLanguageByCode(ctx, strings.ToLower(hint)); err == nil && l.Active {
			return l.ID
		}
	}
	if l, err := st.Languages().GetLanguageByCode(ctx, domain.FallbackLanguageCode); err == nil && l.Active {
		return l.ID
	}
	if list, err := st.Languages().ListActiveLanguages(ctx); err == nil && len(list) > 0 {
		return list[0].ID
	}
	return ""
}

func validateEmail(raw string) (string, error) {
	addr := domain.NormalizeEmail(raw)
	if addr == "" {
		return "", ErrEmailRequired
	}
	at := strings.IndexByte(addr, '@')
	if at <= 0 || at == len(addr)-1 || !strings.Contains(addr[at+1:], ".") {
		return "", ErrInvalidEmail
	}
	return addr, nil
}

func userInfo(u domain.User) *authsdk.UserInfo {
	return &authsdk.UserInfo{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             string(u.Role),
		RegistrationStep: string(u.Step),
	}
}
