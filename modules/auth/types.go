package auth

import "github.com/example/securecam-store/domain/directory"

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	ExpiresIn    int64              `json:"expires_in"`
	TokenType    string             `json:"token_type"`
	UserID       string             `json:"user_id"`
	Name         string             `json:"name"`
	Role         directory.UserRole `json:"role"`
}
