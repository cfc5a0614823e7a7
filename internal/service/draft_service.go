package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftmail/draftmail/internal/generator"
	"github.com/draftmail/draftmail/internal/logger"
	"github.com/draftmail/draftmail/internal/model"
)

// DraftService turns structured email parameters into generated email text
// by delegating to an external completion provider. It keeps no state
// between requests.
type DraftService struct {
	gen generator.Generator
	log *logger.Logger
}

// NewDraftService creates a new DraftService.
func NewDraftService(gen generator.Generator, log *logger.Logger) *DraftService {
	return &DraftService{
		gen: gen,
		log: log.WithComponent("draft"),
	}
}

// Draft validates the request, builds the prompt, and returns the trimmed
// generated email body. Validation failures return a *ValidationError and
// never reach the provider.
func (s *DraftService) Draft(ctx context.Context, req model.EmailRequest) (string, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	prompt := generator.BuildPrompt(req)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("subject", req.Subject).Msg("completion provider failed")
		return "", fmt.Errorf("generate draft: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Error().Str("subject", req.Subject).Msg("completion provider returned no text")
		return "", generator.ErrEmptyCompletion
	}

	return text, nil
}
