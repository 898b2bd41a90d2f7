package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the auth service. Message carries the
// user-facing text the server sent, e.g. "Invalid email or password".
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth service: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("auth service: HTTP %d", e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, statusCode int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == statusCode
}

// parseErrorResponse builds an APIError from an error response body.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var step StepResponse
	if err := json.Unmarshal(body, &step); err == nil {
		apiErr.Status = step.Status
		apiErr.Message = step.Message
	}

	return apiErr
}
