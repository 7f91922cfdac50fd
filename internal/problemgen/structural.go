package problemgen

import "fmt"

// StructuralValidator checks that required fields are present and in range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.ID == "" {
		return &ValidationError{Validator: v.Name(), Message: "id is empty"}
	}
	if q.Prompt == "" {
		return &ValidationError{Validator: v.Name(), Message: "prompt is empty"}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("difficulty %d must be between 1 and 5", q.Difficulty),
		}
	}
	return nil
}

// OptionsValidator checks the answer options: 2-4 distinct non-empty
// strings with the correct index inside the list.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question) *ValidationError {
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("need 2-4 options, got %d", len(q.Options)),
		}
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o == "" {
			return &ValidationError{Validator: v.Name(), Message: "empty option"}
		}
		if seen[o] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %q", o)}
		}
		seen[o] = true
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct index %d out of range for %d options", q.CorrectIndex, len(q.Options)),
		}
	}
	return nil
}
