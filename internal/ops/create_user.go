package ops

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/servicekit"
	"github.com/phrazzld/servicekit/internal/domain"
)

// validate is the shared validator instance for operation parameters.
var validate = validator.New()

// CreateUserParams are the inputs to CreateUser.
type CreateUserParams struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=72"`
}

// CreateUser registers a new user account: it validates the parameters,
// hashes the password, and produces a *domain.User. Validation failures are
// reported as one record per offending field with Kind "validation"; the
// operation then returns nil.
type CreateUser struct {
	Params CreateUserParams
}

// Call implements servicekit.Operation.
func (op *CreateUser) Call(s *servicekit.Service) any {
	if err := validate.Struct(op.Params); err != nil {
		appendValidationRecords(s, err)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(op.Params.Password), bcrypt.DefaultCost)
	if err != nil {
		s.AppendError(servicekit.Record{
			Message: fmt.Sprintf("failed to hash password: %v", err),
			Kind:    "internal",
		})
		return nil
	}

	user, err := domain.NewUser(op.Params.Email, string(hash))
	if err != nil {
		s.AppendError(servicekit.Record{
			Message: fmt.Sprintf("failed to create user: %v", err),
			Kind:    "internal",
		})
		return nil
	}

	return user
}

// appendValidationRecords converts a validator error into one structured
// record per failed field, preserving field order.
func appendValidationRecords(s *servicekit.Service, err error) {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		s.AppendError(servicekit.Record{
			Message: fmt.Sprintf("parameter validation failed: %v", err),
			Kind:    "validation",
		})
		return
	}

	for _, fe := range fieldErrors {
		s.AppendError(servicekit.Record{
			Message: fmt.Sprintf("invalid %s: failed '%s' constraint", fe.Field(), fe.Tag()),
			Kind:    "validation",
			Fields: map[string]any{
				"field":      fe.Field(),
				"constraint": fe.Tag(),
			},
		})
	}
}
