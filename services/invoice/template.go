package invoice

// invoiceTemplate renders the HTML invoice attached to confirmation emails
// and served from the invoice endpoints.
const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Invoice #{{ .Number }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0 auto; max-width: 800px; padding: 20px; color: #333; }
    .invoice-header { text-align: center; margin-bottom: 30px; }
    .invoice-title { font-size: 24px; font-weight: bold; }
    .section-title { font-size: 18px; font-weight: bold; border-bottom: 1px solid #ddd; padding-bottom: 5px; margin-bottom: 10px; }
    .details { margin-bottom: 30px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
    th, td { padding: 10px; text-align: left; border-bottom: 1px solid #ddd; }
    th { background-color: #f2f2f2; }
    .amount { text-align: right; }
    .total-row { font-weight: bold; }
    .footer { margin-top: 50px; text-align: center; font-size: 12px; color: #777; }
  </style>
</head>
<body>
  <div class="invoice-header">
    <div class="invoice-title">INVOICE</div>
    <div>ProfitPilot</div>
    <div>Invoice #{{ .Number }}</div>
    <div>Date: {{ .InvoiceDate }}</div>
    <div>Due Date: {{ .DueDate }}</div>
  </div>

  <div class="details">
    <div class="section-title">Bill To</div>
    <div>{{ .Client.Name }}</div>
    <div>{{ .Client.Email }}</div>
  </div>

  <div class="details">
    <div class="section-title">Event Details</div>
    <div>Event: {{ .Event.EventType }}</div>
    <div>Date: {{ .Event.Date }}</div>
    <div>Time: {{ .Event.TimeSlot }}</div>
    <div>Guests: {{ .Event.GuestCount }}</div>
    {{ if .Event.SpecialRequests }}<div>Special Requests: {{ .Event.SpecialRequests }}</div>{{ end }}
  </div>

  <table>
    <thead>
      <tr><th>Description</th><th class="amount">Amount</th></tr>
    </thead>
    <tbody>
      {{ range .Lines }}
      <tr><td>{{ .Description }}</td><td class="amount">${{ printf "%.2f" .Amount }}</td></tr>
      {{ end }}
      <tr><td class="amount">Subtotal</td><td class="amount">${{ printf "%.2f" .Subtotal }}</td></tr>
      <tr><td class="amount">Tax ({{ printf "%.1f" .TaxPercent }}%)</td><td class="amount">${{ printf "%.2f" .Tax }}</td></tr>
      <tr class="total-row"><td class="amount">Total</td><td class="amount">${{ printf "%.2f" .Total }}</td></tr>
    </tbody>
  </table>

  <div>
    <div class="section-title">Payment Instructions</div>
    <div>Please make payment within 30 days of the invoice date.</div>
    <div>Bank transfer details will be provided separately.</div>
  </div>

  <div class="footer">
    <div>Thank you for your business!</div>
  </div>
</body>
</html>
`
