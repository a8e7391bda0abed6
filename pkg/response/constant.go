package response

// Standard messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
)
