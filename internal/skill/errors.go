package skill

import "errors"

// Domain-specific errors for the skill package.
var (
	// ErrExternalService covers secret retrieval and completion call failures.
	ErrExternalService = errors.New("external service failure")

	// ErrMalformedPayload means the transport input could not be decoded into a Request.
	ErrMalformedPayload = errors.New("malformed request payload")
)
