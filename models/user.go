// models/user.go
package models

import "time"

// UserMetadata mirrors the metadata block clients read off the auth user.
type UserMetadata struct {
	Name string `json:"name"`
}

// User is the public shape of an account, as consumed by clients.
type User struct {
	ID       string       `json:"id"`
	Email    string       `json:"email"`
	Metadata UserMetadata `json:"metadata"`
}

// UserRecord is the stored account document. Only the password and token
// hashes are persisted, never the raw values.
type UserRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	TokenHash    string    `json:"tokenHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public converts a stored record to its client-facing shape.
func (r *UserRecord) Public() User {
	return User{
		ID:       r.ID,
		Email:    r.Email,
		Metadata: UserMetadata{Name: r.Name},
	}
}
