package response

// Resp is the standard JSON response body of the service's own endpoints.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorBody is returned by the skill transports when no voice response
// could be produced.
type ErrorBody struct {
	Error string `json:"error"`
}
