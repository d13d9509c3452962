package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vaultpass/vaultpass-web/internal/apiclient"
	"github.com/vaultpass/vaultpass-web/internal/middleware"
	"github.com/vaultpass/vaultpass-web/internal/service"
)

var validate = validator.New()

const (
	maxJSONBody      = 1 << 20  // 1MB
	maxMultipartBody = 10 << 20 // 10MB
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// decodeJSON reads a size-capped JSON body into v. On failure it writes the
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, false)
}

// decodeOptionalJSON is decodeJSON that leaves v untouched on an empty body,
// whether or not the request declared a length.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// validateRequest checks v's validate tags. On failure it writes a 400 with
// the message registered for the first failing tag and returns false.
func validateRequest(w http.ResponseWriter, v any, messages map[string]string) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	msg := "invalid request body"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if m, ok := messages[verrs[0].Tag()]; ok {
			msg = m
		}
	}
	writeJSON(w, http.StatusBadRequest, errorResponse(msg))
	return false
}

// statusForError picks the browser-facing status for an upstream failure.
// Unclassified 4xx statuses are passed through; anything else unknown is a bad gateway.
func statusForError(e *apiclient.HTTPError) int {
	switch e.Kind {
	case apiclient.KindUnauthorized:
		return http.StatusUnauthorized
	case apiclient.KindNotFound:
		return http.StatusNotFound
	case apiclient.KindConflict:
		return http.StatusConflict
	case apiclient.KindInternalServerError:
		return http.StatusInternalServerError
	}
	if e.Status >= 400 && e.Status < 500 {
		return e.Status
	}
	return http.StatusBadGateway
}

// writeServiceError renders an error from the service layer. Upstream messages
// reach the browser unmodified.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *apiclient.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Kind == apiclient.KindUnauthorized {
			clearSessionCookie(w)
		}
		writeJSON(w, statusForError(httpErr), errorResponse(httpErr.Message))
		return
	}

	if errors.Is(err, service.ErrIDRequired) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
