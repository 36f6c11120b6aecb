package request

import (
	"bytes"
	"encoding/json"

	"portfolio_backend/internal/usecase"
)

// ReceiptRequestPayload is the public receipt form body. amountPaid may come as
// a JSON number or a numeric string.
type ReceiptRequestPayload struct {
	FullName       string          `json:"fullName" example:"Jane Doe"`
	Phone          string          `json:"phone" example:"+1 555 0100"`
	Email          string          `json:"email" example:"jane@example.com"`
	ProjectService string          `json:"projectService" example:"Logo Design"`
	AmountPaid     json.RawMessage `json:"amountPaid" swaggertype:"number" example:"150"`
	Date           string          `json:"date" example:"2024-03-05"`
	Notes          string          `json:"notes"`
}

// AmountText returns amountPaid as text, "" when absent or null.
func (r ReceiptRequestPayload) AmountText() string {
	raw := bytes.TrimSpace(r.AmountPaid)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func (r ReceiptRequestPayload) ToInput() usecase.ReceiptRequestInput {
	return usecase.ReceiptRequestInput{
		FullName:       r.FullName,
		Phone:          r.Phone,
		Email:          r.Email,
		ProjectService: r.ProjectService,
		AmountPaid:     r.AmountText(),
		Date:           r.Date,
		Notes:          r.Notes,
	}
}
