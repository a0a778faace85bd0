package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

// APIError is returned for any non-2xx response, and for 2xx bodies that cannot be decoded.
// Body holds the parsed JSON value when the body is JSON, the raw text otherwise.
type APIError struct {
	StatusCode int
	Headers    http.Header
	Body       any
}

func (e *APIError) Error() string {
	switch body := e.Body.(type) {
	case nil:
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	case string:
		if strings.TrimSpace(body) == "" {
			return fmt.Sprintf("api error: status %d", e.StatusCode)
		}
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, body)
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Sprintf("api error: status %d: %v", e.StatusCode, body)
		}
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, encoded)
	}
}

// UnprocessableEntityError is returned for 422 responses carrying a validation payload
type UnprocessableEntityError struct {
	*APIError
	Detail models.HTTPValidationError
}

func (e *UnprocessableEntityError) Error() string {
	messages := e.Detail.Messages()
	if len(messages) == 0 {
		return fmt.Sprintf("validation error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("validation error: status %d: %s", e.StatusCode, strings.Join(messages, "; "))
}

func (e *UnprocessableEntityError) Unwrap() error {
	return e.APIError
}

// StatusCode extracts the HTTP status from an API error chain
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}

func newAPIError(status int, headers http.Header, body any) *APIError {
	return &APIError{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}
