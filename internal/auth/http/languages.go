package http

import (
	"net/http"

	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/pkg/httpx"
)

// LanguagesHandler serves GET /v1/languages.
type LanguagesHandler struct {
	Languages *service.LanguageService
}

// ServeHTTP godoc
//
//	@Summary		List Languages
//	@Description	Returns the active platform languages, ordered by code.
//	@Tags			Languages
//	@Produce		json
//	@Success		200	{array}	authsdk.Language	"code, name, nativeName"
//	@Router			/v1/languages [get].
func (h *LanguagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	langs, err := h.Languages.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, langs)
}
