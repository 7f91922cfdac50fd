package problemgen

import "fmt"

// Validator checks an assembled question before it is served.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators returns the first validation failure, or nil.
func runValidators(vs []Validator, q *Question) *ValidationError {
	for _, v := range vs {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
