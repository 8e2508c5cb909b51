package error

// RequestErrorCode defines error codes for problems with the HTTP request itself.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeInvalidUserID      RequestErrorCode = "REQ-010001"
	ErrCodeInvalidGoalID      RequestErrorCode = "REQ-010002"
	ErrCodeInvalidRequestBody RequestErrorCode = "REQ-010003"
	ErrCodeInvalidQuery       RequestErrorCode = "REQ-010004"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited RequestErrorCode = "REQ-020001"
)
