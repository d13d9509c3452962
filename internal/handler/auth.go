package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vaultpass/vaultpass-web/internal/apiclient"
	"github.com/vaultpass/vaultpass-web/internal/crypto"
	"github.com/vaultpass/vaultpass-web/internal/middleware"
	"github.com/vaultpass/vaultpass-web/internal/model"
	"github.com/vaultpass/vaultpass-web/internal/service"
	"github.com/vaultpass/vaultpass-web/internal/session"
)

// AuthHandler handles login, sign-up and logout for browser sessions.
type AuthHandler struct {
	store        *session.Store
	secret       string
	expiry       time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *session.Store, secret string, expiry time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		store:        store,
		secret:       secret,
		expiry:       expiry,
		cookieSecure: cookieSecure,
	}
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.startSession(w, r, func(ctx context.Context, users *service.UserService) (model.User, error) {
		return users.Login(ctx, req)
	}, http.StatusOK)
}

// HandleSignUp handles POST /api/v1/auth/signup requests.
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.startSession(w, r, func(ctx context.Context, users *service.UserService) (model.User, error) {
		return users.SignUp(ctx, req)
	}, http.StatusCreated)
}

// startSession opens a session, runs authenticate against the upstream API
// with it, and issues the session cookie on success.
func (h *AuthHandler) startSession(
	w http.ResponseWriter,
	r *http.Request,
	authenticate func(context.Context, *service.UserService) (model.User, error),
	status int,
) {
	sess, err := h.store.Create()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := authenticate(r.Context(), service.NewUserService(sess.Client))
	if err != nil {
		h.store.Delete(sess.ID)
		writeServiceError(w, r, err)
		return
	}
	sess.SetUser(user)

	token, err := crypto.GenerateToken(sess.ID, h.secret, h.expiry)
	if err != nil {
		h.store.Delete(sess.ID)
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.expiry.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, status, user)
}

// HandleLogout handles POST /api/v1/auth/logout requests. The local session
// ends even if the upstream call fails.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	err := service.NewUserService(sess.Client).Logout(r.Context())
	h.store.Delete(sess.ID)
	clearSessionCookie(w)
	// An upstream session that already expired still ends in a local logout.
	if err != nil && !errors.Is(err, apiclient.ErrUnauthorized) {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMe handles GET /api/v1/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	user, err := service.NewUserService(sess.Client).Me(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	sess.SetUser(user)

	writeJSON(w, http.StatusOK, user)
}
