// Package api exposes the REST surface over Fiber: handlers, the auth
// middleware, and the error-to-status mapping.
package api

// Response messages. Every endpoint wraps its payload in a WebResponse
// carrying exactly one of these.
const (
	MessageSuccess             = "success"
	MessageBadRequest          = "bad request"
	MessageInternalServerError = "internal server error"
)

// WebResponse is the uniform envelope of every endpoint. Data, Errors, and
// Paging are omitted when empty.
type WebResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Paging  any    `json:"paging,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) WebResponse {
	return WebResponse{Message: MessageSuccess, Data: data}
}
