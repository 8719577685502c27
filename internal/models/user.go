// Package models defines the core entities shared by the storage backends
// and the feature services.
package models

import "time"

// User is an authentication identity. Profile data lives separately in
// Profile; FullName here is the identity metadata copy kept by the
// session layer.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResetToken is a single-use password reset token delivered by email.
type ResetToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
