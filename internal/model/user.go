package model

import (
	"database/sql"
	"time"
)

// User represents a user in the database.
type User struct {
	ID           int64          `db:"user_id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	ActiveToken  sql.NullString `db:"active_token"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// Identity is the acting user resolved from a verified session token.
type Identity struct {
	UserID int64
	Email  string
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse carries the id of the newly created user.
type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

// MessageResponse is the acknowledgement body for mutations without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}
