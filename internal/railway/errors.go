package railway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned when Railway rejects the API token.
var ErrUnauthorized = errors.New("railway: unauthorized")

// ErrAmbiguous is returned when a project or environment must be chosen
// explicitly because more than one is available.
var ErrAmbiguous = errors.New("railway: selection required")

// APIError is a failed GraphQL request: a non-2xx response or a response
// carrying GraphQL errors.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Messages holds the GraphQL error messages, if any.
	Messages []string
	// Body is the raw response for non-JSON failures.
	Body string
}

func (e *APIError) Error() string {
	switch {
	case len(e.Messages) > 0:
		return fmt.Sprintf("railway: %s (%d)", strings.Join(e.Messages, "; "), e.StatusCode)
	case e.Body != "":
		return fmt.Sprintf("railway: unexpected %d response: %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("railway: unexpected %d response", e.StatusCode)
	}
}

// Is lets errors.Is(err, ErrUnauthorized) match auth failures.
func (e *APIError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return true
	}
	for _, msg := range e.Messages {
		if strings.Contains(strings.ToLower(msg), "not authorized") {
			return true
		}
	}
	return false
}

// SelectionError lists the choices when a project or environment cannot be
// picked automatically.
type SelectionError struct {
	Kind    string
	Choices []string
}

func (e *SelectionError) Error() string {
	if len(e.Choices) == 0 {
		return fmt.Sprintf("railway: no %s available", e.Kind)
	}
	return fmt.Sprintf("railway: choose a %s: %s", e.Kind, strings.Join(e.Choices, ", "))
}

func (e *SelectionError) Unwrap() error { return ErrAmbiguous }
