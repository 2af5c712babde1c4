// Package validate provides stateless format and schema validators for data
// governance inputs. Expected-invalid input is never an error: single-field
// validators return a Result, multi-field validators return a FieldResult
// with every applicable violation collected, and callers branch on the
// boolean.
package validate

// Result is the outcome of a single-field validation
type Result struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

// FieldResult is the outcome of a multi-field validation. Errors holds every
// violation found - validators evaluate all rules instead of stopping at the
// first failure.
type FieldResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// Valid returns a passing Result
func Valid() Result {
	return Result{IsValid: true}
}

// Invalid returns a failing Result with the given message
func Invalid(msg string) Result {
	return Result{IsValid: false, Error: msg}
}

func newFieldResult(errs []string) FieldResult {
	return FieldResult{IsValid: len(errs) == 0, Errors: errs}
}
