package models

// LoginRequest is the payload for password authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token string          `json:"token"`
	User  *CallerIdentity `json:"user"`
}
