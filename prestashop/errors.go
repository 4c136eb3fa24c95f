package prestashop

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/prestashop/xmltree"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid prestashop configuration")
	// ErrUnauthorized indicates the API key was rejected
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	// ErrUndefinedData indicates a create call without data or files
	ErrUndefinedData = errors.New("undefined data")
)

// ParsingError is returned when a response body cannot be decoded
type ParsingError = xmltree.ParsingError

// EncodingError is returned when a payload does not describe exactly one root element
type EncodingError = xmltree.EncodingError

// AuthenticationError is returned for HTTP 401 responses. The service sends an
// empty body in that case, so nothing else is extracted.
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("prestashop API error: status %d: %s", e.StatusCode, e.Message)
}

// Is reports a match against ErrUnauthorized
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// ServiceError represents any other non-success response
type ServiceError struct {
	StatusCode int
	// Message is the human label for the status code
	Message string
	// Code and RemoteMessage come from the errors entry of the response body
	Code          int
	RemoteMessage string
	// Err is set when the errors entry could not be extracted
	Err error
}

func (e *ServiceError) Error() string {
	if e.RemoteMessage != "" {
		return fmt.Sprintf("prestashop API error: status %d: %s: [%d] %s", e.StatusCode, e.Message, e.Code, e.RemoteMessage)
	}
	return fmt.Sprintf("prestashop API error: status %d: %s", e.StatusCode, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *ServiceError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// InputError indicates a call that cannot be issued with the given arguments
type InputError struct {
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prestashop input error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("prestashop input error: %s", e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
