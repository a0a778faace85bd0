package client

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

// Response pairs the transport response with the decoded payload.
// Data is nil when the server answered 2xx with a blank body or a JSON null.
type Response[T any] struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Data       *T
}

// HasData reports whether a payload was decoded
func (r *Response[T]) HasData() bool {
	return r != nil && r.Data != nil
}

// Interpret maps a raw status, headers and body onto a typed result or a typed error
func Interpret[T any](status int, headers http.Header, body []byte) (*Response[T], error) {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		resp := &Response[T]{
			StatusCode: status,
			Headers:    headers,
			Body:       body,
		}
		if isBlank(body) || isNull(body) {
			return resp, nil
		}
		if !json.Valid(body) {
			return nil, newAPIError(status, headers, string(body))
		}

		var data T
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, newAPIError(status, headers, parseBody(body))
		}
		resp.Data = &data
		return resp, nil
	}

	if status == http.StatusUnprocessableEntity && json.Valid(body) {
		var detail models.HTTPValidationError
		if err := json.Unmarshal(body, &detail); err == nil {
			return nil, &UnprocessableEntityError{
				APIError: newAPIError(status, headers, detail),
				Detail:   detail,
			}
		}
	}

	return nil, newAPIError(status, headers, parseBody(body))
}

// parseBody prefers the parsed JSON value and falls back to the raw text
func parseBody(body []byte) any {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	return parsed
}

func isBlank(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0
}

func isNull(body []byte) bool {
	return bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}
