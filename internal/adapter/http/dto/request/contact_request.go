package request

import "portfolio_backend/internal/usecase"

// ContactInquiryRequest is the public contact form body. Required fields are
// checked by the use case so every missing one is reported at once.
type ContactInquiryRequest struct {
	Name        string `json:"name" example:"Jane Doe"`
	Phone       string `json:"phone" example:"+1 555 0100"`
	Message     string `json:"message" example:"I need a new logo"`
	InquiryType string `json:"inquiryType" example:"New Order"`
}

func (r ContactInquiryRequest) ToInput() usecase.ContactInquiryInput {
	return usecase.ContactInquiryInput{
		Name:        r.Name,
		Phone:       r.Phone,
		Message:     r.Message,
		InquiryType: r.InquiryType,
	}
}
