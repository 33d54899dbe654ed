package response

import "time"

// Response represents the standard API envelope: a success flag, an optional
// message or data payload, and a timestamp on everything but bare messages.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// Success returns a success envelope wrapping the data
func Success(data interface{}) Response {
	return Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Message returns a success envelope carrying only a human-readable message
func Message(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
	}
}

// Error returns an error envelope wrapping the error message
func Error(err string) Response {
	return Response{
		Success:   false,
		Error:     err,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
