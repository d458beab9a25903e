package ops

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/servicekit"
	"github.com/phrazzld/servicekit/internal/domain"
)

// AuthenticateUser checks a plaintext password against a user's stored hash.
// On success it returns the authenticated *domain.User; on mismatch it
// appends a record with Kind "auth" and returns nil. The record message is
// deliberately vague so callers cannot distinguish a bad password from a
// missing user.
type AuthenticateUser struct {
	User     *domain.User
	Password string
}

// Call implements servicekit.Operation.
func (op *AuthenticateUser) Call(s *servicekit.Service) any {
	if op.User == nil {
		s.AppendError(servicekit.Record{Message: "invalid credentials", Kind: "auth"})
		return nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(op.User.HashedPassword), []byte(op.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.AppendError(servicekit.Record{Message: "invalid credentials", Kind: "auth"})
		} else {
			s.AppendError(servicekit.Record{
				Message: "failed to compare password hash: " + err.Error(),
				Kind:    "internal",
			})
		}
		return nil
	}

	return op.User
}
