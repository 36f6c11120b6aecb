package interfaces

import (
	"context"
	"portfolio_backend/internal/domain/entities"
)

// IChatMessageRepository persists chat messages.
type IChatMessageRepository interface {
	Create(ctx context.Context, m entities.ChatMessage) (entities.ChatMessage, error)
	ListBySession(ctx context.Context, sessionID string) ([]entities.ChatMessage, error)
	ListAll(ctx context.Context) ([]entities.ChatMessage, error)
	// SetSessionStatus writes status on every message of the session and
	// returns how many messages were touched.
	SetSessionStatus(ctx context.Context, sessionID, status string) (int, error)
}

// IChatSessionStateRepository persists the explicit status of chat sessions.
// GetBySessionID returns a zero state when the session has none.
type IChatSessionStateRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (entities.ChatSessionState, error)
	List(ctx context.Context) ([]entities.ChatSessionState, error)
	Upsert(ctx context.Context, sessionID, status string) (entities.ChatSessionState, error)
}
