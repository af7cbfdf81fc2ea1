package response

const (
	// MessageSuccess is the message body of every OK response.
	MessageSuccess = "success"

	// InternalServerErrorCode is the error_code for unhandled failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "internal server error"
)
