package entities

import "time"

// User is an admin dashboard account persisted in the users table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// New accounts start unverified; login is refused until IsVerified is set by
// the verification link flow.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
