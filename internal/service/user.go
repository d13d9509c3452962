package service

import (
	"bytes"
	"context"

	"github.com/vaultpass/vaultpass-web/internal/apiclient"
	"github.com/vaultpass/vaultpass-web/internal/model"
)

// UserService wraps the upstream /users endpoints.
type UserService struct {
	api API
}

// NewUserService creates a new UserService.
func NewUserService(api API) *UserService {
	return &UserService{api: api}
}

// Me returns the currently logged-in user.
func (s *UserService) Me(ctx context.Context) (model.User, error) {
	var u model.User
	err := s.api.Get(ctx, "/users", &u)
	return u, err
}

// Login authenticates against the upstream API; the session cookie lands in the client's jar.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (model.User, error) {
	var u model.User
	err := s.api.Post(ctx, "/users/login", req, &u)
	return u, err
}

// SignUp registers a new account.
func (s *UserService) SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	var u model.User
	err := s.api.Post(ctx, "/users/signup", req, &u)
	return u, err
}

// Logout ends the upstream session.
func (s *UserService) Logout(ctx context.Context) error {
	return s.api.Post(ctx, "/users/logout", nil, nil)
}

// Update changes the profile. It is sent as multipart/form-data so an image can ride along.
func (s *UserService) Update(ctx context.Context, upd model.UserUpdate) (model.User, error) {
	body := &apiclient.MultipartBody{}
	body.AddField("name", upd.Name)
	body.AddField("email", upd.Email)
	if upd.Image != nil {
		body.AddFile("profileImg", upd.Image.Filename, upd.Image.ContentType, bytes.NewReader(upd.Image.Data))
	}

	var u model.User
	err := s.api.Patch(ctx, "/users", body, &u)
	return u, err
}

// UpdatePassword changes the account password.
func (s *UserService) UpdatePassword(ctx context.Context, req model.PasswordUpdateRequest) error {
	return s.api.Patch(ctx, "/users/update-password", req, nil)
}

// ProfileImage downloads the avatar as raw bytes.
func (s *UserService) ProfileImage(ctx context.Context) (model.ProfileImage, error) {
	raw, err := s.api.GetRaw(ctx, "/users/profile-image")
	if err != nil {
		return model.ProfileImage{}, err
	}
	return model.ProfileImage{ContentType: raw.ContentType, Data: raw.Data}, nil
}
