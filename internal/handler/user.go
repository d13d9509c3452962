package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vaultpass/vaultpass-web/internal/middleware"
	"github.com/vaultpass/vaultpass-web/internal/model"
	"github.com/vaultpass/vaultpass-web/internal/service"
)

// UserHandler handles profile requests of the logged-in user.
type UserHandler struct{}

// NewUserHandler creates a new UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func userService(r *http.Request) (*service.UserService, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return service.NewUserService(sess.Client), true
}

// HandleUpdateProfile handles PATCH /api/v1/users multipart requests with
// name, email and an optional profileImg file.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	users, ok := userService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBody)
	if err := r.ParseMultipartForm(maxMultipartBody); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return
	}

	upd := model.UserUpdate{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	}

	file, hdr, err := r.FormFile("profileImg")
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid profile image"))
			return
		}
		upd.Image = &model.ProfileImage{
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Data:        data,
		}
	case !errors.Is(err, http.ErrMissingFile):
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid profile image"))
		return
	}

	user, err := users.Update(r.Context(), upd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		sess.SetUser(user)
	}

	writeJSON(w, http.StatusOK, user)
}

var passwordMessages = map[string]string{
	"eqfield": "passwords don't match",
}

// HandleUpdatePassword handles PATCH /api/v1/users/password requests.
func (h *UserHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	users, ok := userService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PasswordUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req, passwordMessages) {
		return
	}

	if err := users.UpdatePassword(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleProfileImage handles GET /api/v1/users/profile-image, streaming the
// upstream image bytes with their content type.
func (h *UserHandler) HandleProfileImage(w http.ResponseWriter, r *http.Request) {
	users, ok := userService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	img, err := users.ProfileImage(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	contentType := img.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(img.Data)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(img.Data)
}
