package dto

import (
	"time"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest payload for citizen self-registration or, when sent by an
// authenticated official, creation of a subordinate official.
type RegisterRequest struct {
	Name          string      `json:"name" validate:"required"`
	Email         string      `json:"email" validate:"required,email"`
	Password      string      `json:"password" validate:"required,min=8"`
	District      string      `json:"district"`
	Role          domain.Role `json:"role" validate:"omitempty,oneof=CITIZEN ADMIN_CM HEAD_DEPT HEAD_SUB"`
	Department    string      `json:"department"`
	SubDepartment *string     `json:"sub_department"`
}

// AuthResponse is the login/register envelope.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
