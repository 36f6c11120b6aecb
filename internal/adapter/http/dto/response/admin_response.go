package response

import (
	"time"

	"portfolio_backend/internal/usecase"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, ExpiresAt: r.ExpiresAt, Username: r.Username}
}

type DashboardResponse struct {
	TotalReceiptRequests   int `json:"totalReceiptRequests"`
	PendingReceiptRequests int `json:"pendingReceiptRequests"`
	TotalContacts          int `json:"totalContacts"`
	NewContacts            int `json:"newContacts"`
	ChatSessions           int `json:"chatSessions"`
	ActiveChatSessions     int `json:"activeChatSessions"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse(s)
}
