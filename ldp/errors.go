package ldp

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeNoContentType indicates a body parse was attempted without a
	// declared content type.
	ErrCodeNoContentType ErrorCode = "NO_CONTENT_TYPE"
	// ErrCodeUnsupportedContentType indicates a content type the graph
	// engine cannot parse.
	ErrCodeUnsupportedContentType ErrorCode = "UNSUPPORTED_CONTENT_TYPE"
	// ErrCodeNoBody indicates a body parse was attempted on a response
	// without a transport result.
	ErrCodeNoBody ErrorCode = "NO_BODY"
	// ErrCodeParseError indicates the graph engine rejected the body.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeHTTPError indicates a transport-level failure.
	ErrCodeHTTPError ErrorCode = "HTTP_ERROR"
)

var (
	// ErrNoContentType indicates a parse was requested with no declared
	// content type. There is no fallback format.
	ErrNoContentType = errors.New("ldp: no content type declared for body")
	// ErrNoBody indicates a parse was requested on a response that carries
	// no transport result.
	ErrNoBody = errors.New("ldp: response has no body to parse")
	// ErrUnsupportedContentType indicates the graph engine has no format
	// for the declared content type.
	ErrUnsupportedContentType = errors.New("ldp: unsupported content type")
)

// Code returns the error code for an error. Returns empty string for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	if code := sentinelCode(err); code != "" {
		return code
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		if code := sentinelCode(opErr.Err); code != "" {
			return code
		}
		return ErrCodeHTTPError
	}

	return ErrCodeParseError
}

// sentinelCode maps the package sentinels to their codes, "" for anything
// else.
func sentinelCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrNoContentType):
		return ErrCodeNoContentType
	case errors.Is(err, ErrNoBody):
		return ErrCodeNoBody
	case errors.Is(err, ErrUnsupportedContentType):
		return ErrCodeUnsupportedContentType
	}
	return ""
}

// OperationError provides structured context for a failed client operation.
type OperationError struct {
	Method string // Lowercase HTTP verb (e.g. "get", "put")
	URL    string // Request URL
	Status int    // HTTP status code (0 if the request never completed)
	Err    error  // Underlying error
}

func (e *OperationError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("ldp: %s %s: status %d: %v", e.Method, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("ldp: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error { return e.Err }
