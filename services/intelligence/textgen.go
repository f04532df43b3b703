package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"profitpilot/models"
	"profitpilot/utils"

	"go.uber.org/zap"
)

// DefaultAIService drafts customer-facing email bodies. Every generation
// has a deterministic template fallback, so a missing API key or a failed
// call degrades to the template rather than an error.
type DefaultAIService struct {
	Client Client
}

func NewDefaultAIService(client Client) *DefaultAIService {
	return &DefaultAIService{Client: client}
}

func displayDate(date string) string {
	if t, err := time.Parse(models.DateLayout, date); err == nil {
		return t.Format("Monday, January 2, 2006")
	}
	return date
}

// ConfirmationEmail drafts the confirmation body for a booked event.
func (s *DefaultAIService) ConfirmationEmail(ctx context.Context, b models.BookingRecord) (string, error) {
	fallback := confirmationFallback(b)
	if s.Client == nil {
		return fallback, nil
	}

	prompt := fmt.Sprintf(`Generate a professional and friendly booking confirmation email to %s.
The booking is confirmed for %s in the %s for %s with %d guests.
The total price is $%.2f.

The email should:
1. Start with a personalized greeting
2. Confirm the booking details (date, time, purpose, guest count, price)
3. Mention that an invoice is attached
4. End with a professional sign-off
5. Be written in a friendly, professional tone

Do not use placeholder text - generate a complete, ready-to-send email body.`,
		b.Customer.Name, displayDate(b.Details.Date), b.Details.TimeSlot.DisplayWindow(),
		b.Details.EventType, b.Details.GuestCount, b.Pricing.Total)

	body, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("confirmation generation failed, using fallback", zap.Error(err))
		return fallback, nil
	}
	return body, nil
}

// RejectionEmail drafts the body for an unavailable slot, listing
// alternatives when there are any.
func (s *DefaultAIService) RejectionEmail(ctx context.Context, req models.ExtractedRequest, alts []models.SlotRef) (string, error) {
	fallback := rejectionFallback(req, alts)
	if s.Client == nil {
		return fallback, nil
	}

	var altText strings.Builder
	if len(alts) > 0 {
		altText.WriteString("We can offer the following alternative slots:\n")
		for _, alt := range alts {
			fmt.Fprintf(&altText, "- %s, %s\n", displayDate(alt.Date), alt.Time.DisplayWindow())
		}
	} else {
		altText.WriteString("No alternative slots are available in the surrounding week.\n")
	}

	name := "Valued Client"
	if req.ContactName != nil {
		name = *req.ContactName
	}
	date := ""
	if req.Date != nil {
		date = displayDate(*req.Date)
	}
	purpose := "your event"
	if req.EventType != nil {
		purpose = *req.EventType
	}

	prompt := fmt.Sprintf(`Generate a professional and considerate email to %s.
The booking for %s for %s cannot be accommodated.

%s
The email should:
1. Start with a personalized greeting
2. Express regret that the requested slot is not available
3. Clearly present the alternative options if available
4. Invite the client to respond with their preference or request another time
5. End with a professional sign-off

Do not use placeholder text - generate a complete, ready-to-send email body.`,
		name, date, purpose, altText.String())

	body, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("rejection generation failed, using fallback", zap.Error(err))
		return fallback, nil
	}
	return body, nil
}

func confirmationFallback(b models.BookingRecord) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your booking request. We are pleased to confirm your booking for %s on %s, %s.

Booking Details:
- Event: %s
- Date: %s
- Time: %s
- Number of Guests: %d
- Total Price: $%.2f

An invoice for this booking is attached. Please review it and process the payment according to the instructions provided.

We look forward to hosting your event!

Best regards,
The ProfitPilot Team`,
		b.Customer.Name, b.Details.EventType, displayDate(b.Details.Date),
		b.Details.TimeSlot.DisplayWindow(), b.Details.EventType,
		displayDate(b.Details.Date), b.Details.TimeSlot.DisplayWindow(),
		b.Details.GuestCount, b.Pricing.Total)
}

func rejectionFallback(req models.ExtractedRequest, alts []models.SlotRef) string {
	name := "Valued Client"
	if req.ContactName != nil {
		name = *req.ContactName
	}
	date := "the requested date"
	if req.Date != nil {
		date = displayDate(*req.Date)
	}
	purpose := "your event"
	if req.EventType != nil {
		purpose = *req.EventType
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `Dear %s,

Thank you for your booking request for %s on %s.

Unfortunately, we are unable to accommodate your request for this specific slot.
`, name, purpose, date)

	if len(alts) > 0 {
		sb.WriteString("\nHowever, we can offer the following alternative slots:\n")
		for i, alt := range alts {
			fmt.Fprintf(&sb, "%d. %s, %s\n", i+1, displayDate(alt.Date), alt.Time.DisplayWindow())
		}
		sb.WriteString("\nPlease let us know if any of these alternatives would work for you, or if you'd like to suggest another time.\n")
	} else {
		sb.WriteString("\nWe could not find an alternative slot in the surrounding week. Please share other dates that might work for you.\n")
	}

	sb.WriteString("\nBest regards,\nThe ProfitPilot Team")
	return sb.String()
}
