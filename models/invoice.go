package models

// InvoiceLine is one billable line item.
type InvoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice is a generated invoice for a booking. Line items are derived from
// the booking's PriceBreakdown; tax is applied on the subtotal.
type Invoice struct {
	Number      string        `json:"invoice_number"`
	BookingID   string        `json:"booking_id"`
	InvoiceDate string        `json:"invoice_date"`
	DueDate     string        `json:"due_date"`
	Client      Customer      `json:"client"`
	Event       EventDetails  `json:"event"`
	Lines       []InvoiceLine `json:"items"`
	Subtotal    float64       `json:"subtotal"`
	TaxRate     float64       `json:"tax_rate"`
	Tax         float64       `json:"tax"`
	Total       float64       `json:"total"`
	HTMLPath    string        `json:"html_path,omitempty"`
}
