// Package catalog loads the product-versions catalog and normalizes it into
// the expected-product list the reconciler validates against.
package catalog

import "fmt"

// ParseError represents a malformed catalog document
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
