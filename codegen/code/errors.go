package code

import "fmt"

type (
	// InvalidIdentifierError is returned when a name does not match the
	// identifier grammar [A-Za-z_$][A-Za-z_$0-9]*.
	InvalidIdentifierError struct {
		// Text is the rejected name.
		Text string
	}

	// EncodingError is returned when a value cannot be encoded as a quoted
	// literal, for example because it contains a function, a channel or a
	// non-finite float.
	EncodingError struct {
		// Value is the value that failed to encode.
		Value any
		// Err is the underlying JSON encoding error.
		Err error
	}
)

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("code: name must be a valid identifier: %q", e.Text)
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("code: cannot encode %T as a literal: %v", e.Value, e.Err)
}

// Unwrap returns the underlying encoding error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}
