package notification

import (
	"context"

	"profitpilot/models"
)

// TextGenerator drafts customer-facing email bodies.
type TextGenerator interface {
	ConfirmationEmail(ctx context.Context, b models.BookingRecord) (string, error)
	RejectionEmail(ctx context.Context, req models.ExtractedRequest, alts []models.SlotRef) (string, error)
}

// Notifier dispatches booking-related messages through an external
// transport.
type Notifier interface {
	SendConfirmation(ctx context.Context, b models.BookingRecord, inv *models.Invoice) error
	SendAlternatives(ctx context.Context, req models.ExtractedRequest, alts []models.SlotRef) error
	SendIncomplete(ctx context.Context, to string) error
	SendProcessingError(ctx context.Context, to string) error
}
