package apiclient

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantMessage string
		wantErr     error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"session expired"}`, KindUnauthorized, "session expired", ErrUnauthorized},
		{"not found", http.StatusNotFound, `{"message": "not found"}`, KindNotFound, "not found", ErrNotFound},
		{"conflict", http.StatusConflict, `{"message":"email already in use"}`, KindConflict, "email already in use", ErrConflict},
		{"internal", http.StatusInternalServerError, `{"message":"boom"}`, KindInternalServerError, "boom", ErrInternalServerError},
		{"bad request is unknown", http.StatusBadRequest, `{"message":"bad input"}`, KindUnknown, "bad input", ErrUnknown},
		{"bad gateway is unknown", http.StatusBadGateway, ``, KindUnknown, FallbackMessage, ErrUnknown},
		{"unparsable body", http.StatusNotFound, `<html>oops</html>`, KindNotFound, FallbackMessage, ErrNotFound},
		{"empty message", http.StatusConflict, `{"message":""}`, KindConflict, FallbackMessage, ErrConflict},
		{"message of wrong type", http.StatusInternalServerError, `{"message":42}`, KindInternalServerError, FallbackMessage, ErrInternalServerError},
		{"other fields only", http.StatusUnauthorized, `{"error":"nope"}`, KindUnauthorized, FallbackMessage, ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapError(tt.status, []byte(tt.body))

			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, tt.status, err.Status)
			assert.Equal(t, tt.wantMessage, err.Message)
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPErrorUnwrapsTransportCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := transportError(cause)

	assert.Equal(t, KindUnknown, err.Kind)
	assert.Equal(t, 0, err.Status)
	assert.Equal(t, FallbackMessage, err.Error())
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPErrorAs(t *testing.T) {
	var wrapped error = MapError(http.StatusNotFound, []byte(`{"message":"item missing"}`))

	var httpErr *HTTPError
	if assert.ErrorAs(t, wrapped, &httpErr) {
		assert.Equal(t, "item missing", httpErr.Message)
	}
	assert.NotErrorIs(t, wrapped, ErrUnauthorized)
}
