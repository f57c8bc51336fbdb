package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategorySchema  Category = "schema"
	CategoryRender  Category = "render"
	CategoryDataset Category = "dataset"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// EastError is a structured error with a code, suggestions, and documentation.
type EastError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (schema, render, dataset, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *EastError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *EastError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *EastError) WithSuggestion(s string) *EastError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *EastError) WithDetail(d string) *EastError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *EastError) Wrap(err error) *EastError {
	e.Wrapped = err
	return e
}

// New creates an EastError from a registered error code.
func New(code string) *EastError {
	template, ok := registry[code]
	if !ok {
		return &EastError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &EastError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new EastError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *EastError {
	return &EastError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an EastError.
func FromError(err error, code string) *EastError {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*EastError); ok {
		return ee
	}
	return New(code).Wrap(err)
}
