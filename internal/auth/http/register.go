package http

import (
	"net/http"
	"time"

	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/httpx"
)

// RegisterHandler serves the sign-up wizard endpoints.
type RegisterHandler struct {
	Registration *service.RegistrationService
	Cookies      cookieConfig
	RefreshTTL   time.Duration
}

// HandleStart godoc
//
//	@Summary		Start Registration
//	@Description	Begins email sign-up by sending a 6-digit verification code to the address.
//	@Description	Limited to 5 codes per address per hour.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterStartRequest	true	"email and optional language hint"
//	@Success		200		{object}	authsdk.StepResponse			"status, message, nextStep"
//	@Failure		400		{object}	authsdk.StepResponse			"invalid email"
//	@Failure		409		{object}	authsdk.StepResponse			"account already exists"
//	@Failure		429		{object}	authsdk.StepResponse			"code budget exhausted"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req authsdk.RegisterStartRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Registration.Start(r.Context(), req.Email, req.Language)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleVerifyOTP godoc
//
//	@Summary		Verify Email Code
//	@Description	Checks the emailed 6-digit code. Codes expire after 10 minutes and allow 3 attempts.
//	@Description	On success returns a 5-minute registration token used to set the password.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.VerifyOTPRequest	true	"email and code"
//	@Success		200		{object}	authsdk.VerifyOTPResponse	"status, message, registrationToken, nextStep"
//	@Failure		400		{object}	authsdk.StepResponse		"missing, expired or wrong code"
//	@Failure		429		{object}	authsdk.StepResponse		"reverify budget exhausted"
//	@Router			/v1/auth/verify-otp [post].
func (h *RegisterHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.VerifyOTPRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Registration.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Cookies.deliverRegistrationToken(w, r, &resp)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSetupPassword godoc
//
//	@Summary		Set Password
//	@Description	Completes credential creation using the registration token from verification.
//	@Description	Returns a full access/refresh token pair on success.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SetupPasswordRequest	true	"password, confirmation and registration token"
//	@Success		200		{object}	authsdk.AuthResponse			"status, message, tokens, user, nextStep"
//	@Failure		400		{object}	authsdk.StepResponse			"weak password or mismatch"
//	@Failure		401		{object}	authsdk.StepResponse			"invalid or expired registration token"
//	@Failure		409		{object}	authsdk.StepResponse			"password already configured"
//	@Router			/v1/auth/setup-password [post].
func (h *RegisterHandler) HandleSetupPassword(w http.ResponseWriter, r *http.Request) {
	var req authsdk.SetupPasswordRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	token := tokenFromBodyOrCookie(r, req.RegistrationToken, cookieRegistrationToken)

	resp, err := h.Registration.SetupPassword(r.Context(), token, req.Password, req.ConfirmPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Cookies.deliverAuthResponse(w, r, &resp, h.RefreshTTL)
	if isWebClient(r) {
		h.Cookies.clear(w, cookieRegistrationToken)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSelectRole godoc
//
//	@Summary		Select Role
//	@Description	Records the platform role for the authenticated user. Only PLAYER is accepted.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.SelectRoleRequest	true	"role"
//	@Success		200		{object}	authsdk.StepResponse		"status, message, nextStep"
//	@Failure		400		{object}	authsdk.StepResponse		"unsupported role"
//	@Failure		401		{object}	authsdk.StepResponse		"missing or invalid access token"
//	@Router			/v1/auth/select-role [post].
func (h *RegisterHandler) HandleSelectRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req authsdk.SelectRoleRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Registration.SelectRole(r.Context(), userID, req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleProfileForm godoc
//
//	@Summary		Submit Profile Form
//	@Description	Saves the identity fields collected after role selection and advances to onboarding.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.ProfileFormRequest	true	"profile fields"
//	@Success		200		{object}	authsdk.StepResponse		"status, message, nextStep"
//	@Failure		400		{object}	authsdk.StepResponse		"missing names or bad birthday"
//	@Failure		401		{object}	authsdk.StepResponse		"missing or invalid access token"
//	@Router			/v1/auth/profile-form [post].
func (h *RegisterHandler) HandleProfileForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req authsdk.ProfileFormRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Registration.SubmitProfile(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
