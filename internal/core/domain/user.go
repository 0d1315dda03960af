package domain

import "time"

// RoleReadOnly is the role assigned to users who register without one.
const RoleReadOnly = "ROLE_READ_ONLY"

// User represents a registered user of the application.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique across all users
	PasswordHash string    `json:"-"`     // bcrypt hash, never serialized
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
