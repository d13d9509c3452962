package model

// User is the profile returned by the upstream /users endpoints.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest represents a user registration request.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordUpdateRequest changes the account password.
type PasswordUpdateRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"eqfield=NewPassword"`
}

// ProfileImage is an uploaded or downloaded avatar.
type ProfileImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UserUpdate carries a profile update; Image is optional.
type UserUpdate struct {
	Name  string
	Email string
	Image *ProfileImage
}
