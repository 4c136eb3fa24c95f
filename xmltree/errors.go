package xmltree

import (
	"fmt"
)

// maxContentSnippet bounds the amount of offending content kept on a ParsingError
const maxContentSnippet = 512

// EncodingError indicates a payload that cannot be rendered as a single XML document
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("xml encoding error: %s", e.Reason)
}

// ParsingError indicates a response body that could not be decoded
type ParsingError struct {
	Reason string
	// Content holds at most the first 512 bytes of the rejected input
	Content []byte
	Err     error
}

// NewParsingError builds a ParsingError, keeping a bounded snippet of content
func NewParsingError(reason string, content []byte, err error) *ParsingError {
	if len(content) > maxContentSnippet {
		content = content[:maxContentSnippet]
	}
	snippet := make([]byte, len(content))
	copy(snippet, content)

	return &ParsingError{
		Reason:  reason,
		Content: snippet,
		Err:     err,
	}
}

func (e *ParsingError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Content) > 0 {
		msg = fmt.Sprintf("%s. %s", msg, e.Content)
	}
	return msg
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}
