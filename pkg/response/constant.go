package response

const (
	MessageSuccess = "Success"

	// DefaultErrorMessage is the only detail a transport failure exposes.
	DefaultErrorMessage = "Internal Server Error"
)
