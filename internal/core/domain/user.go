package domain

import "time"

// User models an account in the course catalog.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthContext is the per-request identity extracted from a verified
// token. The Role here is the claim snapshot taken at issuance, not a
// fresh read of the store.
type AuthContext struct {
	UserID string
	Role   Role
}
