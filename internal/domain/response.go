package domain

// ResponseStatus represents the outcome of processing a LearningRequest.
type ResponseStatus string

// Possible response status values
const (
	StatusOK    ResponseStatus = "ok"
	StatusError ResponseStatus = "error"
)

// LearningResponse is the result envelope produced for every LearningRequest.
// Content is present iff Status is ok; ErrorMessage is present iff Status is
// error. The envelope is owned transiently by the HTTP layer until it is
// serialized to the client.
type LearningResponse struct {
	Status       ResponseStatus `json:"status"`
	Content      string         `json:"content,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// NewOKResponse creates a successful LearningResponse carrying the generated
// content.
func NewOKResponse(content string) *LearningResponse {
	return &LearningResponse{
		Status:  StatusOK,
		Content: content,
	}
}

// NewErrorResponse creates a failed LearningResponse carrying a client-safe
// error message.
func NewErrorResponse(message string) *LearningResponse {
	return &LearningResponse{
		Status:       StatusError,
		ErrorMessage: message,
	}
}
