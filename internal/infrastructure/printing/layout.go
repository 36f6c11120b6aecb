package printing

import (
	"time"

	"portfolio_backend/internal/domain/entities"
)

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Line is one block of text on the receipt, in paint order.
type Line struct {
	Text        string
	Size        float64
	Bold        bool
	Align       Align
	SpaceBefore float64
	// Wrap lets long free text flow over several lines.
	Wrap bool
}

const receiptDateFormat = "January 2, 2006"

// Layout turns a receipt request into the ordered lines of its receipt.
// It does no I/O so the content can be checked without decoding a PDF.
func Layout(r entities.ReceiptRequest, businessName string) ([]Line, error) {
	date, err := formatReceiptDate(r.Date)
	if err != nil {
		return nil, err
	}
	if r.AmountPaid.IsNegative() {
		return nil, &RenderError{Field: "amountPaid", Reason: "amount must not be negative"}
	}

	lines := []Line{
		{Text: "RECEIPT", Size: 24, Bold: true, Align: AlignCenter},
		{Text: "Receipt Number: " + r.ReceiptNumber(), Size: 12, Align: AlignCenter, SpaceBefore: 10},
		{Text: "Date: " + date, Size: 12, Align: AlignLeft, SpaceBefore: 20},

		{Text: "Client Information:", Size: 14, Bold: true, Align: AlignLeft, SpaceBefore: 20},
		{Text: "Name: " + r.FullName, Size: 12, Align: AlignLeft},
	}
	if r.Email != "" {
		lines = append(lines, Line{Text: "Email: " + r.Email, Size: 12, Align: AlignLeft})
	}
	if r.Phone != "" {
		lines = append(lines, Line{Text: "Phone: " + r.Phone, Size: 12, Align: AlignLeft})
	}

	lines = append(lines,
		Line{Text: "Service Details:", Size: 14, Bold: true, Align: AlignLeft, SpaceBefore: 20},
		Line{Text: "Service: " + r.ProjectService, Size: 12, Align: AlignLeft, Wrap: true},
		Line{Text: "Amount Paid: $" + r.AmountPaid.StringFixed(2), Size: 16, Bold: true, Align: AlignRight, SpaceBefore: 20},
	)

	if r.Notes != "" {
		lines = append(lines,
			Line{Text: "Notes:", Size: 14, Bold: true, Align: AlignLeft, SpaceBefore: 20},
			Line{Text: r.Notes, Size: 12, Align: AlignLeft, Wrap: true},
		)
	}

	lines = append(lines,
		Line{Text: "Thank you for your business!", Size: 10, Align: AlignCenter, SpaceBefore: 40},
		Line{Text: businessName, Size: 10, Align: AlignCenter},
	)
	return lines, nil
}

// formatReceiptDate renders a stored YYYY-MM-DD (or full timestamp) date in
// long US form.
func formatReceiptDate(raw string) (string, error) {
	if t, err := time.Parse(entities.ReceiptDateLayout, raw); err == nil {
		return t.Format(receiptDateFormat), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", &RenderError{Field: "date", Reason: "not a calendar date", Err: err}
	}
	return t.UTC().Format(receiptDateFormat), nil
}
