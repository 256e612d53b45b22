package entities

import "time"

// PasswordReset is a single-use password reset token.
//
// Storage model (DynamoDB):
//   - PK: token
//
// Tokens expire one hour after creation and are deleted once consumed.
type PasswordReset struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token is past its expiry at the given time.
func (p PasswordReset) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
