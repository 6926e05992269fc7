// Package extraction scans landing-page HTML for product family and
// platform links.
package extraction

import "fmt"

// ParseError represents a failure to parse the landing page at all.
// An empty or link-free document is not a parse error.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("page parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("page parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
