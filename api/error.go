package api

import (
	"fmt"
	"net/http"
)

const (
	// NumsParam is the query parameter carrying the comma separated numbers
	NumsParam = "nums"

	InvalidInputMessage = "Invalid input. The query string should contain numeric values separated by commas."
)

// Error represents an error response of the API
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

// Error returns the string representation of the error
func (e Error) Error() string {
	return fmt.Sprintf("code=%d, message=%s", e.Code, e.Message)
}

// Err creates a new API error with the given HTTP status code. If message is empty, the default message
// for the given code is used.
func Err(code int, message string) Error {
	if len(message) == 0 {
		message = http.StatusText(code)
	}

	return Error{
		Code:    code,
		Message: message,
	}
}

func InvalidInput() Error {
	return Err(http.StatusBadRequest, InvalidInputMessage)
}
