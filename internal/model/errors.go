package model

import "fmt"

// LoadError indicates a model file could not be read or decoded.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model file %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SchemaError indicates a model file decoded but did not match the expected
// document schema.
type SchemaError struct {
	Path   string
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model file %s failed schema validation: %s", e.Path, e.Detail)
}

// UnfittedError indicates a model file is structurally valid but the model
// inside it is not fully fitted (missing vocabulary, missing weights, or
// inconsistent dimensions). Detected at load time so inference never has to
// guess.
type UnfittedError struct {
	Path   string
	Reason string
}

func (e *UnfittedError) Error() string {
	return fmt.Sprintf("model in %s is not fitted: %s", e.Path, e.Reason)
}
