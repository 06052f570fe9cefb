package response

// Default messages and codes for the JSON envelope.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong. Please try again later."
	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
)

// DateTimeFormat is the layout used by the DateTime marshaler.
const DateTimeFormat = "2006-01-02 15:04:05"
