// Package result defines the uniform operation envelope used across the API.
// Every cart-engine operation and every mutating endpoint answers with a
// Result; callers (UI, tests) key off Success and Message. Raw storage errors
// are logged server-side and never placed in Message.
package result

// Result is the canonical {success, message, data?} envelope.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(msg string) *Result { return &Result{Success: true, Message: msg} }

func OKData(msg string, data any) *Result {
	return &Result{Success: true, Message: msg, Data: data}
}

func Fail(msg string) *Result { return &Result{Success: false, Message: msg} }

// ValidationResult carries per-field errors from request binding.
type ValidationResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func Validation(fields map[string]string) *ValidationResult {
	return &ValidationResult{Success: false, Message: "validation failed", Fields: fields}
}
