package ons

import "fmt"

// Code classifies the errors raised by the client itself
type Code int16

// predefined error codes
const (
	// ClientCheck the value failed the client-side configuration check
	ClientCheck Code = -1
)

// ClientError the error raised by the client before any broker interaction
type ClientError struct {
	Code    Code
	Message string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("code:%d,message:%s", e.Code, e.Message)
}

func clientCheckError(message string) *ClientError {
	return &ClientError{Code: ClientCheck, Message: message}
}
