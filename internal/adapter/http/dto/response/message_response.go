package response

const (
	ContactReceivedMessage = "Your message has been received. We will get back to you via WhatsApp soon!"
	ReceiptReceivedMessage = "Receipt request submitted successfully"
)

// MessageResponse acknowledges an action that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// SubmissionResponse acknowledges a public form submission.
type SubmissionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
