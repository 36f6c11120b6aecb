package entities

import "time"

// ContactStatus is the admin-facing lifecycle of a contact inquiry.
//
// Only "new" is assigned by the server; any other value comes from the admin
// console and is stored as given.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusCompleted ContactStatus = "completed"
)

// Inquiry types offered by the public contact form. They are not enforced.
const (
	InquiryTypeNewOrder       = "New Order"
	InquiryTypeGeneral        = "General Inquiry"
	InquiryTypeCollaboration  = "Collaboration"
	InquiryTypeReceiptRequest = "Receipt Request"
)

// ContactInquiry is a visitor message submitted through the contact form.
//
// Storage model:
//   - collection: contacts
//   - createdAt is stamped by the store and never rewritten
type ContactInquiry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	InquiryType string        `json:"inquiryType"`
	Status      ContactStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`
}
