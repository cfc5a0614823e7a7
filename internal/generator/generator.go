// Package generator produces email drafts by delegating text generation
// to an external completion provider.
package generator

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the provider answers without any
// usable text.
var ErrEmptyCompletion = errors.New("no content in completion response")

// Generator is the interface all text-generation providers must implement.
// This abstraction allows swapping providers without changing business
// logic, and lets tests substitute deterministic stubs.
type Generator interface {
	// Generate returns the text the provider produced for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
