package service

import (
	"context"
	"fmt"

	"github.com/draftmail/draftmail/internal/email"
	"github.com/draftmail/draftmail/internal/logger"
	"github.com/draftmail/draftmail/internal/model"
)

// DeliveryService hands a finished email to an external mail-relay
// provider. One outbound delivery per call; no retry, no queuing, no
// delivery-status tracking.
type DeliveryService struct {
	sender email.Sender
	log    *logger.Logger
}

// NewDeliveryService creates a new DeliveryService.
func NewDeliveryService(sender email.Sender, log *logger.Logger) *DeliveryService {
	return &DeliveryService{
		sender: sender,
		log:    log.WithComponent("delivery"),
	}
}

// Deliver validates the request and relays the message. Validation
// failures return a *ValidationError and never reach the relay provider.
func (s *DeliveryService) Deliver(ctx context.Context, req model.DeliveryRequest) error {
	if missing := req.MissingFields(); len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	msg := email.Message{
		To:         req.Recipient,
		Subject:    req.Subject,
		TextBody:   req.Body,
		Attachment: req.Attachment,
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).Str("recipient", req.Recipient).Msg("mail relay failed")
		return fmt.Errorf("deliver email: %w", err)
	}

	s.log.Info().Str("recipient", req.Recipient).Bool("attachment", req.Attachment != nil).Msg("email relayed")
	return nil
}
