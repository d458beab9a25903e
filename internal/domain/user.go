package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user account created by the example
// operations. Format-level validation (email shape, password length) happens
// in the operation that constructs the user; this type only guarantees the
// fields are present.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a User with a fresh ID and creation timestamp.
// The password must already be hashed; this constructor never sees
// plaintext credentials.
func NewUser(email, hashedPassword string) (*User, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if hashedPassword == "" {
		return nil, ErrEmptyHashedPassword
	}

	return &User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
