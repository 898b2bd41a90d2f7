package http

import (
	"net/http"
	"time"

	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/httpx"
)

// LoginHandler serves POST /v1/auth/login.
type LoginHandler struct {
	Login      *service.LoginService
	Cookies    cookieConfig
	RefreshTTL time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Authenticates an email+password account and returns an access/refresh token pair.
//	@Description	Accounts that have not finished registration are told which step to resume.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"email and password"
//	@Success		200		{object}	authsdk.AuthResponse	"status, message, tokens, user, nextStep"
//	@Failure		401		{object}	authsdk.StepResponse	"invalid email or password"
//	@Failure		403		{object}	authsdk.StepResponse	"unverified, incomplete or inactive account"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Login.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Cookies.deliverAuthResponse(w, r, &resp, h.RefreshTTL)
	httpx.WriteJSON(w, http.StatusOK, resp)
}
