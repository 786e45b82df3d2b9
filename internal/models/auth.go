package models

// LoginRequest defines the structure for user login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest defines the structure for admin login requests
type AdminLoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest defines the structure for registration requests
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address" binding:"required"`
}

// ResetPasswordRequest defines the structure for password reset requests
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// AuthResponse is returned on successful login or signup
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
