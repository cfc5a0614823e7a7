package service

import "strings"

// ValidationError reports required request fields that were empty. It is
// returned before any provider is invoked and maps to a client error at
// the HTTP boundary.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0] + " is a required field"
	}
	return strings.Join(e.Fields, ", ") + " are required fields"
}
