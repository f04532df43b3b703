package notification

import (
	"context"
	"fmt"
	"strings"

	"profitpilot/models"
	"profitpilot/utils"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// MailNotifier sends booking messages over SMTP.
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
	gen    TextGenerator
}

func NewMailNotifier(host string, port int, username, password, from string, gen TextGenerator) *MailNotifier {
	return &MailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		gen:    gen,
	}
}

func (n *MailNotifier) send(to, subject, body, attachment string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	// Plain bodies render fine in every client; the invoice rides along as
	// an HTML attachment.
	m.SetBody("text/plain", body)
	if attachment != "" {
		m.Attach(attachment)
	}

	if err := n.dialer.DialAndSend(m); err != nil {
		return utils.NewServiceError(fmt.Sprintf("failed to send email to %s", to), err)
	}
	utils.GetLogger().Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// SendConfirmation emails a booking confirmation with the invoice attached.
func (n *MailNotifier) SendConfirmation(ctx context.Context, b models.BookingRecord, inv *models.Invoice) error {
	body, err := n.gen.ConfirmationEmail(ctx, b)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Booking Confirmation - %s on %s", b.Details.EventType, b.Details.Date)
	attachment := ""
	if inv != nil {
		attachment = inv.HTMLPath
	}
	return n.send(b.Customer.Email, subject, body, attachment)
}

// SendAlternatives emails a rejection offering alternative slots (or none).
func (n *MailNotifier) SendAlternatives(ctx context.Context, req models.ExtractedRequest, alts []models.SlotRef) error {
	if req.ContactEmail == nil {
		return utils.NewInputError("no contact email to send alternatives to")
	}
	body, err := n.gen.RejectionEmail(ctx, req, alts)
	if err != nil {
		return err
	}
	date := ""
	if req.Date != nil {
		date = *req.Date
	}
	subject := strings.TrimSpace(fmt.Sprintf("Regarding Your Booking Request %s", date))
	return n.send(*req.ContactEmail, subject, body, "")
}

// SendIncomplete asks the requester for the missing booking details.
func (n *MailNotifier) SendIncomplete(ctx context.Context, to string) error {
	body := `Dear Customer,

Thank you for your booking request. To process your request, we need some additional information:

- Event date
- Preferred time (morning, afternoon or evening)
- Number of guests
- Type of event (e.g., meeting, conference, party)

Please reply to this email with the missing details, and we'll be happy to check availability for you.

Best regards,
The ProfitPilot Team`
	return n.send(to, "Additional Information Needed for Your Booking Request", body, "")
}

// SendProcessingError notifies the requester that processing failed and a
// human will follow up.
func (n *MailNotifier) SendProcessingError(ctx context.Context, to string) error {
	body := `Dear Customer,

Thank you for your booking request. We apologize, but we encountered an issue while processing your request.

Our team has been notified and will review your request manually. You may be contacted for additional information if needed.

Best regards,
The ProfitPilot Team`
	return n.send(to, "Regarding Your Booking Request", body, "")
}
