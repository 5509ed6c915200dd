package api

import "net/http"

// Kind classifies the failures the client can surface. Validation and
// codec failures are raised locally before any network I/O; server
// failures carry whatever the inference server reported.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation - request malformed before any network I/O
	KindValidation
	// KindCodec - tensor encode/decode byte-length mismatch
	KindCodec
	// KindServer - failure reported by or in talking to the server
	KindServer
	// KindTimeout - synchronous or asynchronous wait exceeded its bound
	KindTimeout
	// KindLookup - requested output not present in the response
	KindLookup
)

// Error represents an error that occurred while building, sending or
// decoding an inference request.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, StatusCode: http.StatusBadRequest, Message: message}
}

func NewCodecError(message string) *Error {
	return &Error{Kind: KindCodec, StatusCode: http.StatusBadRequest, Message: message}
}

func NewServerError(statusCode int, message string) *Error {
	return &Error{Kind: KindServer, StatusCode: statusCode, Message: message}
}

func NewTimeoutError(message string) *Error {
	return &Error{Kind: KindTimeout, StatusCode: http.StatusGatewayTimeout, Message: message}
}

func NewLookupError(message string) *Error {
	return &Error{Kind: KindLookup, StatusCode: http.StatusNotFound, Message: message}
}

func kindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

func IsValidationError(err error) bool { return kindOf(err) == KindValidation }
func IsCodecError(err error) bool      { return kindOf(err) == KindCodec }
func IsServerError(err error) bool     { return kindOf(err) == KindServer }
func IsTimeoutError(err error) bool    { return kindOf(err) == KindTimeout }
func IsLookupError(err error) bool     { return kindOf(err) == KindLookup }
