package http

import (
	"errors"
	"net/http"

	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/httpx"
	"github.com/wesports/auth/pkg/slogx"
)

// writeServiceError maps a service failure onto the wire. Domain errors keep
// their status and message; anything else becomes an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		httpx.WriteJSON(w, svcErr.HTTPStatus, authsdk.StepResponse{
			Status:  authsdk.StatusError,
			Message: svcErr.Message,
		})
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", "error", err, "path", r.URL.Path)
	httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.StepResponse{
		Status:  authsdk.StatusError,
		Message: "Something went wrong. Please try again.",
	})
}

// writeBadRequest covers malformed JSON bodies.
func writeBadRequest(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, authsdk.StepResponse{
		Status:  authsdk.StatusError,
		Message: "Invalid request body",
	})
}
