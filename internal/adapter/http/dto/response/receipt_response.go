package response

import (
	"encoding/json"
	"time"

	"portfolio_backend/internal/domain/entities"
)

type ReceiptRequestResponse struct {
	ID             string      `json:"id"`
	ReceiptNumber  string      `json:"receiptNumber"`
	FullName       string      `json:"fullName"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email,omitempty"`
	ProjectService string      `json:"projectService"`
	AmountPaid     json.Number `json:"amountPaid" swaggertype:"number"`
	Date           string      `json:"date"`
	Notes          string      `json:"notes,omitempty"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      *time.Time  `json:"updatedAt,omitempty"`
	WhatsAppURL    string      `json:"whatsappUrl,omitempty"`
}

func FromReceiptRequest(r entities.ReceiptRequest) ReceiptRequestResponse {
	return ReceiptRequestResponse{
		ID:             r.ID,
		ReceiptNumber:  r.ReceiptNumber(),
		FullName:       r.FullName,
		Phone:          r.Phone,
		Email:          r.Email,
		ProjectService: r.ProjectService,
		AmountPaid:     json.Number(r.AmountPaid.StringFixed(2)),
		Date:           r.Date,
		Notes:          r.Notes,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		WhatsAppURL:    entities.WhatsAppLink(r.Phone, ""),
	}
}

func FromReceiptRequests(items []entities.ReceiptRequest) []ReceiptRequestResponse {
	out := make([]ReceiptRequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromReceiptRequest(r))
	}
	return out
}
