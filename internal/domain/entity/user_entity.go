package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// PasswordHash holds the bcrypt-encoded hash, never the plaintext.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is the client-facing projection of a user. It never carries
// the password hash.
type Summary struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// Summarize returns the client-facing projection of u.
func (u *User) Summarize() Summary {
	return Summary{ID: u.ID, Email: u.Email, IsActive: u.IsActive}
}
