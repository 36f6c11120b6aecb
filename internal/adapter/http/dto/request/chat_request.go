package request

import "portfolio_backend/internal/usecase"

type ChatMessageRequest struct {
	SessionID string `json:"sessionId" example:"session_1717243200000_k3j9x2"`
	Message   string `json:"message" example:"Hi, are you available for a project?"`
	Sender    string `json:"sender" example:"user"`
}

func (r ChatMessageRequest) ToInput() usecase.ChatMessageInput {
	return usecase.ChatMessageInput{SessionID: r.SessionID, Message: r.Message, Sender: r.Sender}
}

// AdminReplyRequest is posted from the admin console; the sender is always admin.
type AdminReplyRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}
