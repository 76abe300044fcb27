package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/sashabaranov/go-openai"
)

// APICallError represents a failure calling a completion endpoint
type APICallError struct {
	Provider  string
	Operation string
	Cause     error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Operation, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// IsTransient reports whether an error is worth retrying: network-layer
// failures, timeouts, rate limits, and provider 5xx responses. Malformed
// requests and auth failures are terminal.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		// HTTPStatusCode 0 means the request never got a response.
		return reqErr.HTTPStatusCode == 0 || reqErr.HTTPStatusCode == 429 || reqErr.HTTPStatusCode >= 500
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
