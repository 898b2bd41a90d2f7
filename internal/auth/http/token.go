package http

import (
	"net/http"

	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/httpx"
)

// TokenHandler serves refresh rotation and logout.
type TokenHandler struct {
	Tokens  *service.TokenService
	Cookies cookieConfig
}

// HandleRefresh godoc
//
//	@Summary		Refresh Tokens
//	@Description	Exchanges a valid refresh token for a new access/refresh pair. The presented
//	@Description	token is revoked in the same exchange; replaying it fails.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RefreshRequest	true	"refresh token (or refresh_token cookie for web clients)"
//	@Success		200		{object}	authsdk.AuthResponse	"status, message, tokens, user"
//	@Failure		401		{object}	authsdk.StepResponse	"invalid, expired or revoked refresh token"
//	@Router			/v1/auth/refresh [post].
func (h *TokenHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req authsdk.RefreshRequest
	if err := httpx.ReadJSON(r, &req); err != nil && !isWebClient(r) {
		writeBadRequest(w)
		return
	}

	raw := tokenFromBodyOrCookie(r, req.RefreshToken, cookieRefreshToken)
	if raw == "" {
		writeServiceError(w, r, service.ErrInvalidRefreshToken)
		return
	}

	pair, user, err := h.Tokens.Refresh(r.Context(), raw)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := authsdk.AuthResponse{
		Status:       authsdk.StatusSuccess,
		Message:      "Tokens refreshed",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}
	if !user.Step.IsCompleted() {
		resp.NextStep = string(user.Step)
	}

	h.Cookies.deliverAuthResponse(w, r, &resp, h.Tokens.RefreshTTL)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleLogout godoc
//
//	@Summary		Logout
//	@Description	Revokes the presented refresh token. Always succeeds, including for tokens
//	@Description	that are already expired, revoked or unparseable.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LogoutRequest	true	"refresh token (or refresh_token cookie for web clients)"
//	@Success		200		{object}	authsdk.StepResponse	"status, message"
//	@Router			/v1/auth/logout [post].
func (h *TokenHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LogoutRequest
	_ = httpx.ReadJSON(r, &req) // body is optional for web clients

	raw := tokenFromBodyOrCookie(r, req.RefreshToken, cookieRefreshToken)
	if raw != "" {
		if err := h.Tokens.Logout(r.Context(), raw); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	if isWebClient(r) {
		h.Cookies.clear(w, cookieAccessToken)
		h.Cookies.clear(w, cookieRefreshToken)
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.StepResponse{
		Status:  authsdk.StatusSuccess,
		Message: "Logged out successfully",
	})
}
