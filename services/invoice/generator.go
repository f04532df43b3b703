package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"profitpilot/database"
	"profitpilot/models"
	"profitpilot/utils"

	"github.com/google/uuid"
)

var tmpl = template.Must(template.New("invoice").Parse(invoiceTemplate))

// Generator builds invoices from booking records. Line items derive from
// the booking's price breakdown; tax is applied on the subtotal at the rate
// configured in the store settings. Generated HTML is written under OutDir
// and the structured invoice is appended to the persisted document.
type Generator struct {
	Store  *database.Store
	OutDir string
}

func NewGenerator(store *database.Store, outDir string) *Generator {
	return &Generator{Store: store, OutDir: outDir}
}

// NewNumber builds an invoice number like INV-20240615-1A2B3C4D.
func NewNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}

func buildLines(b models.BookingRecord) []models.InvoiceLine {
	lines := []models.InvoiceLine{
		{Description: fmt.Sprintf("Venue Booking (%s)", b.Details.EventType), Amount: b.Pricing.BasePrice},
		{
			Description: fmt.Sprintf("Attendee Fee (%d guests at $%.2f/person)", b.Pricing.GuestCount, b.Pricing.PerPersonRate),
			Amount:      float64(b.Pricing.GuestCount) * b.Pricing.PerPersonRate,
		},
	}
	if b.Pricing.WeekendPremium > 0 {
		lines = append(lines, models.InvoiceLine{Description: "Weekend Premium", Amount: b.Pricing.WeekendPremium})
	}
	if b.Pricing.SpecialRequestFee > 0 {
		lines = append(lines, models.InvoiceLine{Description: "Special Requests", Amount: b.Pricing.SpecialRequestFee})
	}
	return lines
}

// Generate builds, renders and persists an invoice for a booking.
func (g *Generator) Generate(b models.BookingRecord) (models.Invoice, error) {
	now := time.Now()
	inv := models.Invoice{
		Number:      NewNumber(now),
		BookingID:   b.EventID,
		InvoiceDate: now.Format(models.DateLayout),
		DueDate:     now.AddDate(0, 0, 30).Format(models.DateLayout),
		Client:      b.Customer,
		Event:       b.Details,
		Lines:       buildLines(b),
		Subtotal:    b.Pricing.Total,
	}

	// Tax rate comes from the persisted settings.
	err := g.Store.View(func(doc *database.Document) error {
		inv.TaxRate = doc.Settings.Pricing.TaxRate
		return nil
	})
	if err != nil {
		return models.Invoice{}, err
	}
	inv.Tax = inv.Subtotal * inv.TaxRate
	inv.Total = inv.Subtotal + inv.Tax

	// Rendering and file IO stay outside the store transaction, so the
	// Update closure below has no side effects to unwind.
	path, err := g.render(inv)
	if err != nil {
		return models.Invoice{}, err
	}
	inv.HTMLPath = path

	err = g.Store.Update(func(doc *database.Document) error {
		doc.Invoices = append(doc.Invoices, inv)
		return nil
	})
	if err != nil {
		// A failed persist must not leave an orphan invoice file behind.
		os.Remove(path)
		return models.Invoice{}, err
	}
	return inv, nil
}

func (g *Generator) render(inv models.Invoice) (string, error) {
	html, err := RenderHTML(inv)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return "", utils.NewStorageError("failed to create invoice directory", err)
	}
	path := filepath.Join(g.OutDir, fmt.Sprintf("invoice_%s.html", inv.Number))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", utils.NewStorageError("failed to write invoice file", err)
	}
	return path, nil
}

// RenderHTML renders the invoice template for an invoice.
func RenderHTML(inv models.Invoice) (string, error) {
	data := struct {
		models.Invoice
		TaxPercent float64
	}{Invoice: inv, TaxPercent: inv.TaxRate * 100}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render invoice template: %w", err)
	}
	return buf.String(), nil
}

// List returns all persisted invoices.
func (g *Generator) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := g.Store.View(func(doc *database.Document) error {
		invoices = append(invoices, doc.Invoices...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return invoices, nil
}

// Get returns one invoice by number.
func (g *Generator) Get(number string) (models.Invoice, error) {
	var inv models.Invoice
	err := g.Store.View(func(doc *database.Document) error {
		idx := doc.FindInvoice(number)
		if idx < 0 {
			return utils.NewNotFoundError("invoice %s not found", number)
		}
		inv = doc.Invoices[idx]
		return nil
	})
	return inv, err
}
