package dto

import (
	"strings"
	"time"
)

// ==================== AUTHENTICATION REQUEST DTOs ====================

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20" example:"rocky"`
	Password string `json:"password" validate:"required,min=8,max=100" example:"eye-of-the-tiger"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=254" example:"rocky@example.com"`
}

// Normalize lowercases and trims the identity fields before validation.
func (r *RegisterRequest) Normalize() {
	r.Username = NormalizeUsername(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"rocky"`
	Password string `json:"password" validate:"required" example:"eye-of-the-tiger"`
}

func (l *LoginRequest) Normalize() {
	l.Username = NormalizeUsername(l.Username)
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

// Session is an issued token and when it stops being valid.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type AuthResponse struct {
	Message   string          `json:"message" example:"Login successful"`
	User      AccountResponse `json:"user"`
	Token     string          `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time       `json:"expiresAt" example:"2025-03-17T15:30:00Z"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// ==================== ERROR RESPONSE DTOs ====================

type ErrorResponse struct {
	Code    int         `json:"code" example:"400"`
	Message string      `json:"message" example:"Invalid credentials"`
	Data    interface{} `json:"data,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field" example:"username"`
	Message string `json:"message" example:"username must be at least 3 characters"`
}
