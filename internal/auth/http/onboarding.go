package http

import (
	"net/http"

	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/httpx"
)

// OnboardingHandler serves the post-registration wizard endpoints. All
// mutating routes require an authenticated user.
type OnboardingHandler struct {
	Onboarding *service.OnboardingService
}

// HandleStatus godoc
//
//	@Summary		Onboarding Status
//	@Description	Reports wizard progress with per-field flags so clients can resume mid-way.
//	@Tags			Onboarding
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.OnboardingStatus	"currentStep and completion flags"
//	@Failure		401	{object}	authsdk.StepResponse		"missing or invalid access token"
//	@Router			/v1/onboarding/status [get].
func (h *OnboardingHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	status, err := h.Onboarding.Status(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, status)
}

// HandleGender godoc
//
//	@Summary		Set Gender
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.GenderRequest	true	"MALE, FEMALE or OTHER"
//	@Success		200		{object}	authsdk.StepResponse	"status, message"
//	@Failure		400		{object}	authsdk.StepResponse	"invalid gender"
//	@Router			/v1/onboarding/gender [post].
func (h *OnboardingHandler) HandleGender(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req authsdk.GenderRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Onboarding.SetGender(r.Context(), userID, req.Gender)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandlePosition godoc
//
//	@Summary		Set Playing Position
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.PositionRequest	true	"GOALKEEPER, DEFENDER, MIDFIELDER or FORWARD"
//	@Success		200		{object}	authsdk.StepResponse	"status, message"
//	@Failure		400		{object}	authsdk.StepResponse	"invalid position"
//	@Router			/v1/onboarding/position [post].
func (h *OnboardingHandler) HandlePosition(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req authsdk.PositionRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Onboarding.SetPosition(r.Context(), userID, req.Position)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCategory godoc
//
//	@Summary		Set Competition Category
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.CategoryRequest	true	"AMATEUR, SEMI_PROFESSIONAL, PROFESSIONAL or YOUTH_ACADEMY"
//	@Success		200		{object}	authsdk.StepResponse	"status, message"
//	@Failure		400		{object}	authsdk.StepResponse	"invalid category"
//	@Router			/v1/onboarding/category [post].
func (h *OnboardingHandler) HandleCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req authsdk.CategoryRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		writeBadRequest(w)
		return
	}

	resp, err := h.Onboarding.SetCategory(r.Context(), userID, req.Category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleComplete godoc
//
//	@Summary		Complete Onboarding
//	@Description	Marks the wizard finished. The step marker is terminal; repeat calls are harmless.
//	@Tags			Onboarding
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.StepResponse	"status, message, nextStep"
//	@Router			/v1/onboarding/complete [post].
func (h *OnboardingHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.Onboarding.Complete(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandlePositions godoc
//
//	@Summary		List Playing Positions
//	@Tags			Onboarding
//	@Produce		json
//	@Success		200	{array}	string	"position codes"
//	@Router			/v1/onboarding/positions [get].
func (h *OnboardingHandler) HandlePositions(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Onboarding.Positions())
}

// HandleCategories godoc
//
//	@Summary		List Competition Categories
//	@Tags			Onboarding
//	@Produce		json
//	@Success		200	{array}	string	"category codes"
//	@Router			/v1/onboarding/categories [get].
func (h *OnboardingHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Onboarding.Categories())
}
