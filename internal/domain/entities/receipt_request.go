package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "pending"
	ReceiptStatusCompleted ReceiptStatus = "completed"
)

// ReceiptDateLayout is the calendar date format of ReceiptRequest.Date.
const ReceiptDateLayout = "2006-01-02"

// ReceiptRequest records that a client paid for a service and wants a receipt.
//
// Monetary representation:
//   - AmountPaid is a non-negative decimal, never a float.
type ReceiptRequest struct {
	ID             string          `json:"id"`
	FullName       string          `json:"fullName"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	ProjectService string          `json:"projectService"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Date           string          `json:"date"`
	Notes          string          `json:"notes,omitempty"`
	Status         ReceiptStatus   `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
}

// ReceiptNumber is "REC-" followed by the first 8 characters of the id, uppercased.
func (r ReceiptRequest) ReceiptNumber() string {
	id := r.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return "REC-" + strings.ToUpper(id)
}

// IsCompleted reports whether the admin closed the request.
func (r ReceiptRequest) IsCompleted() bool {
	return r.Status == ReceiptStatusCompleted
}
