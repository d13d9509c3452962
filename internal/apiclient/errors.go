package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
)

// FallbackMessage is used when a failed response carries no readable message.
const FallbackMessage = "Something went wrong. Please try again."

// Sentinel errors, one per Kind. Use errors.Is on any error returned by Client.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnknown             = errors.New("unknown error")
)

// Kind classifies a failed upstream request.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInternalServerError
)

func (k Kind) String() string {
	return k.sentinel().Error()
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	case KindInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnknown
	}
}

// HTTPError is the error returned for every failed request.
// Status is 0 when no response was received.
type HTTPError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the Kind sentinel and, for transport failures, the cause.
func (e *HTTPError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind.sentinel(), e.Err}
	}
	return []error{e.Kind.sentinel()}
}

// KindForStatus maps an HTTP status code to its Kind.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusInternalServerError:
		return KindInternalServerError
	default:
		return KindUnknown
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// MapError converts a failed response into an HTTPError. It has no side effects.
func MapError(status int, body []byte) *HTTPError {
	msg := FallbackMessage
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		msg = eb.Message
	}
	return &HTTPError{
		Kind:    KindForStatus(status),
		Status:  status,
		Message: msg,
	}
}

func transportError(err error) *HTTPError {
	return &HTTPError{
		Kind:    KindUnknown,
		Message: FallbackMessage,
		Err:     err,
	}
}
