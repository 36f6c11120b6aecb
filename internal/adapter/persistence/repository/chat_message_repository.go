package repository

import (
	"context"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"
)

type ChatMessageRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IChatMessageRepository = (*ChatMessageRepository)(nil)

func NewChatMessageRepository(store interfaces.IDocumentStore) *ChatMessageRepository {
	return &ChatMessageRepository{store: store}
}

func (r *ChatMessageRepository) Create(ctx context.Context, m entities.ChatMessage) (entities.ChatMessage, error) {
	doc, err := r.store.Create(ctx, CollectionChatMessages, interfaces.Document{
		fieldSessionID: m.SessionID,
		"message":      m.Message,
		"sender":       string(m.Sender),
	})
	if err != nil {
		return entities.ChatMessage{}, err
	}
	return fromChatMessageDocument(doc), nil
}

// ListBySession returns the session's messages oldest first.
func (r *ChatMessageRepository) ListBySession(ctx context.Context, sessionID string) ([]entities.ChatMessage, error) {
	docs, err := r.store.Query(ctx, CollectionChatMessages, fieldSessionID, sessionID)
	if err != nil {
		return nil, err
	}
	out := fromChatMessageDocuments(docs)
	sortOldestFirst(out, func(m entities.ChatMessage) time.Time { return m.CreatedAt })
	return out, nil
}

func (r *ChatMessageRepository) ListAll(ctx context.Context) ([]entities.ChatMessage, error) {
	docs, err := r.store.List(ctx, CollectionChatMessages, interfaces.FieldCreatedAt, interfaces.SortAscending)
	if err != nil {
		return nil, err
	}
	return fromChatMessageDocuments(docs), nil
}

func (r *ChatMessageRepository) SetSessionStatus(ctx context.Context, sessionID, status string) (int, error) {
	docs, err := r.store.Query(ctx, CollectionChatMessages, fieldSessionID, sessionID)
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, getString(doc, interfaces.FieldID))
	}
	if err := r.store.BatchUpdate(ctx, CollectionChatMessages, ids, interfaces.Document{fieldStatus: status}); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func fromChatMessageDocument(doc interfaces.Document) entities.ChatMessage {
	return entities.ChatMessage{
		ID:        getString(doc, interfaces.FieldID),
		SessionID: getString(doc, fieldSessionID),
		Message:   getString(doc, "message"),
		Sender:    entities.ChatSender(getString(doc, "sender")),
		Status:    getString(doc, fieldStatus),
		CreatedAt: getTime(doc, interfaces.FieldCreatedAt),
	}
}

func fromChatMessageDocuments(docs []interfaces.Document) []entities.ChatMessage {
	out := make([]entities.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromChatMessageDocument(doc))
	}
	return out
}
