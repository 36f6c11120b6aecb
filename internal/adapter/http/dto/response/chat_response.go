package response

import (
	"time"

	"portfolio_backend/internal/domain/entities"
)

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromChatMessage(m entities.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		SessionID: m.SessionID,
		Message:   m.Message,
		Sender:    string(m.Sender),
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func FromChatMessages(items []entities.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromChatMessage(m))
	}
	return out
}

type ChatSessionResponse struct {
	SessionID         string    `json:"sessionId"`
	MessageCount      int       `json:"messageCount"`
	LastMessage       time.Time `json:"lastMessage"`
	Status            string    `json:"status"`
	WhatsAppNotifyURL string    `json:"whatsappNotifyUrl,omitempty"`
}

// FromChatSessions attaches a WhatsApp link to adminPhone announcing each
// session. No link is built when adminPhone is empty.
func FromChatSessions(items []entities.ChatSession, adminPhone string) []ChatSessionResponse {
	out := make([]ChatSessionResponse, 0, len(items))
	for _, s := range items {
		out = append(out, ChatSessionResponse{
			SessionID:         s.SessionID,
			MessageCount:      s.MessageCount,
			LastMessage:       s.LastMessage,
			Status:            s.Status,
			WhatsAppNotifyURL: entities.WhatsAppLink(adminPhone, "New chat message from session "+lastN(s.SessionID, 8)),
		})
	}
	return out
}

type ChatSessionStateResponse struct {
	SessionID string    `json:"sessionId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromChatSessionState(s entities.ChatSessionState) ChatSessionStateResponse {
	return ChatSessionStateResponse{SessionID: s.SessionID, Status: s.Status, UpdatedAt: s.UpdatedAt}
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
