package response

const (
	defaultErrorMessage = "unknown error"
)

// Error represents a standardized API error response
type Error struct {
	Error struct {
		Message   string `json:"message"`
		RequestID string `json:"requestId,omitempty"`
	} `json:"error"`
}

// NewError creates a new error response with the given message
func NewError(requestID string, message string) Error {
	if message == "" {
		message = defaultErrorMessage
	}

	resp := Error{}
	resp.Error.Message = message
	resp.Error.RequestID = requestID

	return resp
}
