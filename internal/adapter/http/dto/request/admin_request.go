package request

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret123"`
}

// StatusUpdateRequest changes the status of a contact, receipt request or chat session.
type StatusUpdateRequest struct {
	Status string `json:"status" example:"completed"`
}
