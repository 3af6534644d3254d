// Package errors provides enhanced error handling with component tracking and
// category-based classification. Errors are created with a builder:
//
//	return errors.New(err).
//		Component("vocalization").
//		Category(errors.CategoryModelLoad).
//		Context("model_path", path).
//		Build()
//
// Categories match the failure taxonomy of the classification pipeline so the
// poller can log and skip uniformly without inspecting error strings.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory represents different types of errors for classification.
type ErrorCategory string

const (
	CategoryModelNotFound ErrorCategory = "model-not-found"
	CategoryModelLoad     ErrorCategory = "model-loading"
	CategoryAudioNotFound ErrorCategory = "audio-not-found"
	CategoryAudioDecode   ErrorCategory = "audio-decode"
	CategoryAudio         ErrorCategory = "audio-processing"
	CategoryInference     ErrorCategory = "inference"
	CategoryDatabase      ErrorCategory = "database"
	CategoryFileIO        ErrorCategory = "file-io"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryValidation    ErrorCategory = "validation"
	CategoryHTTP          ErrorCategory = "http-request"
	CategoryGeneric       ErrorCategory = "generic"
)

// ComponentUnknown is the fallback component name when none was set.
const ComponentUnknown = "unknown"

// EnhancedError wraps an error with component, category and debugging context.
type EnhancedError struct {
	Err       error
	Component string
	Category  ErrorCategory
	Context   map[string]any
	Timestamp time.Time
}

// Error implements the error interface.
func (ee *EnhancedError) Error() string {
	return ee.Err.Error()
}

// Unwrap returns the wrapped error for errors.Is/As chains.
func (ee *EnhancedError) Unwrap() error {
	return ee.Err
}

// Is reports category equality so callers can match on sentinel categories.
func (ee *EnhancedError) Is(target error) bool {
	var other *EnhancedError
	if errors.As(target, &other) {
		return ee.Category == other.Category
	}
	return false
}

// GetCategory returns the error category as a string.
func (ee *EnhancedError) GetCategory() string {
	return string(ee.Category)
}

// GetContext returns the context map, never nil.
func (ee *EnhancedError) GetContext() map[string]any {
	if ee.Context == nil {
		return map[string]any{}
	}
	return ee.Context
}

// ErrorBuilder provides a fluent interface for constructing enhanced errors.
type ErrorBuilder struct {
	err       error
	component string
	category  ErrorCategory
	context   map[string]any
}

// New creates an error builder from an existing error.
func New(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// Newf creates an error builder from a format string.
func Newf(format string, args ...any) *ErrorBuilder {
	return &ErrorBuilder{err: fmt.Errorf(format, args...)}
}

// Component sets the component name for the error.
func (eb *ErrorBuilder) Component(component string) *ErrorBuilder {
	eb.component = component
	return eb
}

// Category sets the error category.
func (eb *ErrorBuilder) Category(category ErrorCategory) *ErrorBuilder {
	eb.category = category
	return eb
}

// Context adds a key/value pair of debugging context.
func (eb *ErrorBuilder) Context(key string, value any) *ErrorBuilder {
	if eb.context == nil {
		eb.context = make(map[string]any)
	}
	eb.context[key] = value
	return eb
}

// ModelContext adds model path and key context in one call.
func (eb *ErrorBuilder) ModelContext(modelPath, modelKey string) *ErrorBuilder {
	eb.Context("model_path", modelPath)
	if modelKey != "" {
		eb.Context("model_key", modelKey)
	}
	return eb
}

// Timing records the duration of the failed operation.
func (eb *ErrorBuilder) Timing(operation string, duration time.Duration) *ErrorBuilder {
	eb.Context("operation", operation)
	eb.Context("duration_ms", duration.Milliseconds())
	return eb
}

// Build creates the final enhanced error.
func (eb *ErrorBuilder) Build() *EnhancedError {
	// If the wrapped error is already enhanced, preserve its metadata unless
	// the builder overrides it.
	var inner *EnhancedError
	if errors.As(eb.err, &inner) {
		if eb.category == "" {
			eb.category = inner.Category
		}
		if eb.component == "" {
			eb.component = inner.Component
		}
		for k, v := range inner.Context {
			if eb.context == nil {
				eb.context = make(map[string]any)
			}
			if _, exists := eb.context[k]; !exists {
				eb.context[k] = v
			}
		}
	}

	if eb.category == "" {
		eb.category = CategoryGeneric
	}
	if eb.component == "" {
		eb.component = ComponentUnknown
	}

	return &EnhancedError{
		Err:       eb.err,
		Component: eb.component,
		Category:  eb.category,
		Context:   eb.context,
		Timestamp: time.Now(),
	}
}

// HasCategory reports whether err carries the given category anywhere in its
// chain.
func HasCategory(err error, category ErrorCategory) bool {
	var ee *EnhancedError
	if errors.As(err, &ee) {
		return ee.Category == category
	}
	return false
}

// Std library re-exports so callers do not need a second errors import.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain matching target.
func As(err error, target any) bool { return errors.As(err, target) }

// Join wraps a list of errors into a single error.
func Join(errs ...error) error { return errors.Join(errs...) }
