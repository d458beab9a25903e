package servicekit

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Common servicekit errors - sentinel errors callers check with errors.Is().
var (
	// ErrNilOperation is returned by New when no operation is provided.
	// The Operation interface stands in for the abstract base type, so a
	// Service without an operation has no business logic to execute.
	ErrNilOperation = errors.New("operation cannot be nil")

	// ErrInvalidRecord is returned by AppendRecord when the record fails
	// validation, typically because its Message field is empty.
	ErrInvalidRecord = errors.New("invalid error record")
)

// validate is the shared validator instance used for Record and parameter
// validation. validator.Validate caches struct metadata, so a single
// instance is reused across the package.
var validate = validator.New()

// Record is one structured business-logic failure reported by an operation.
// Message is mandatory; Kind optionally classifies the failure (for example
// "validation" or "auth"); Fields carries additional structured context.
type Record struct {
	Message string         `json:"message" validate:"required"`
	Kind    string         `json:"kind,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Validate checks that the Record is well formed.
// Returns an error wrapping ErrInvalidRecord if the mandatory message is
// missing.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}

// InvalidErrorTypeError reports that the error list contains an entry that
// is not a Record. It signals a contract violation by the operation author
// and is surfaced by the Errors accessor rather than recovered.
type InvalidErrorTypeError struct {
	// Entry is the offending value found in the error list.
	Entry any
}

// Error implements the error interface for InvalidErrorTypeError.
// The message names the runtime type of the offending entry.
func (e *InvalidErrorTypeError) Error() string {
	return fmt.Sprintf(
		"Invalid error type. Valid error types are servicekit records. Received type '%T'",
		e.Entry,
	)
}
