package render

import "fmt"

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// InvalidStatementError wraps a validation failure found before rendering.
type InvalidStatementError struct {
	Err       error
	Statement string
}

func (e InvalidStatementError) Error() string {
	return fmt.Sprintf("invalid %s statement: %v", e.Statement, e.Err)
}

func (e InvalidStatementError) Unwrap() error { return e.Err }

// Invalid wraps err as an InvalidStatementError, or returns nil.
func Invalid(statement string, err error) error {
	if err == nil {
		return nil
	}
	return InvalidStatementError{Statement: statement, Err: err}
}
