package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	SmsCode  string `json:"smsCode" binding:"required"`
}

// LoginRequest supports login by username or phone
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SmsLoginRequest is the payload for SMS code login
type SmsLoginRequest struct {
	Phone   string `json:"phone" binding:"required"`
	SmsCode string `json:"smsCode" binding:"required"`
}

// SendSmsRequest is the payload for requesting a verification code
type SendSmsRequest struct {
	Phone string `json:"phone" binding:"required"`
}
