package auth

import "time"

// RegisterRequest - DTO for creating a new account. Role is optional and
// defaults to User.
type RegisterRequest struct {
	UserName        string `json:"user_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role"`
}

// LoginRequest - DTO for authenticating with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest - DTO for replacing the current password
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required"`
}

// ForgotPasswordRequest - DTO for requesting a reset token
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest - DTO for completing a password reset
type ResetPasswordRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Token              string `json:"token" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required"`
}

// LoginResponse - DTO returned on successful authentication
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
}
