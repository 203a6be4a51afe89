package responses

import (
	"strings"

	"github.com/goccy/go-json"
)

// apiErrorPayload models the heterogeneous error bodies the lesson API
// returns: message may be a string or a list of strings, and some endpoints
// use an error field instead.
type apiErrorPayload struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// ExtractErrorMessage resolves a user-facing message from a non-2xx lesson
// API body. Resolution order: message as list joined with ", ", message as
// string, the error field, then the per-action fallback.
func ExtractErrorMessage(body []byte, fallback string) string {
	var payload apiErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	if len(payload.Message) > 0 {
		var list []string
		if err := json.Unmarshal(payload.Message, &list); err == nil {
			if joined := strings.Join(list, ", "); joined != "" {
				return joined
			}
		}
		var single string
		if err := json.Unmarshal(payload.Message, &single); err == nil && single != "" {
			return single
		}
	}

	if payload.Error != "" {
		return payload.Error
	}

	return fallback
}
