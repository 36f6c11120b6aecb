package response

import (
	"time"

	"portfolio_backend/internal/domain/entities"
)

type ContactInquiryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Message     string     `json:"message"`
	InquiryType string     `json:"inquiryType"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	WhatsAppURL string     `json:"whatsappUrl,omitempty"`
}

func FromContactInquiry(c entities.ContactInquiry) ContactInquiryResponse {
	return ContactInquiryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Message:     c.Message,
		InquiryType: c.InquiryType,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		WhatsAppURL: entities.WhatsAppLink(c.Phone, ""),
	}
}

func FromContactInquiries(items []entities.ContactInquiry) []ContactInquiryResponse {
	out := make([]ContactInquiryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromContactInquiry(c))
	}
	return out
}
