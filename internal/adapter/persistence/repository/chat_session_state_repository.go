package repository

import (
	"context"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"
)

// ChatSessionStateRepository keeps at most one state document per session.
type ChatSessionStateRepository struct {
	store interfaces.IDocumentStore
	now   func() time.Time
}

var _ interfaces.IChatSessionStateRepository = (*ChatSessionStateRepository)(nil)

func NewChatSessionStateRepository(store interfaces.IDocumentStore) *ChatSessionStateRepository {
	return &ChatSessionStateRepository{store: store, now: time.Now}
}

func (r *ChatSessionStateRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.ChatSessionState, error) {
	docs, err := r.store.Query(ctx, CollectionChatSessionStates, fieldSessionID, sessionID)
	if err != nil {
		return entities.ChatSessionState{}, err
	}
	if len(docs) == 0 {
		return entities.ChatSessionState{}, nil
	}
	return latestState(docs), nil
}

func (r *ChatSessionStateRepository) List(ctx context.Context) ([]entities.ChatSessionState, error) {
	docs, err := r.store.List(ctx, CollectionChatSessionStates, "", interfaces.SortAscending)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ChatSessionState, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromSessionStateDocument(doc))
	}
	return out, nil
}

func (r *ChatSessionStateRepository) Upsert(ctx context.Context, sessionID, status string) (entities.ChatSessionState, error) {
	current, err := r.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.ChatSessionState{}, err
	}

	updatedAt := r.now().UTC()
	fields := interfaces.Document{
		fieldSessionID: sessionID,
		fieldStatus:    status,
		fieldUpdatedAt: docstore.FormatTimestamp(updatedAt),
	}

	if current.ID == "" {
		doc, err := r.store.Create(ctx, CollectionChatSessionStates, fields)
		if err != nil {
			return entities.ChatSessionState{}, err
		}
		return fromSessionStateDocument(doc), nil
	}

	if err := r.store.Update(ctx, CollectionChatSessionStates, current.ID, fields); err != nil {
		return entities.ChatSessionState{}, err
	}
	current.Status = status
	current.UpdatedAt = updatedAt.Truncate(time.Millisecond)
	return current, nil
}

// latestState tolerates duplicates left by concurrent first writes.
func latestState(docs []interfaces.Document) entities.ChatSessionState {
	var latest entities.ChatSessionState
	for _, doc := range docs {
		s := fromSessionStateDocument(doc)
		if latest.ID == "" || s.UpdatedAt.After(latest.UpdatedAt) {
			latest = s
		}
	}
	return latest
}

func fromSessionStateDocument(doc interfaces.Document) entities.ChatSessionState {
	return entities.ChatSessionState{
		ID:        getString(doc, interfaces.FieldID),
		SessionID: getString(doc, fieldSessionID),
		Status:    getString(doc, fieldStatus),
		UpdatedAt: getTime(doc, fieldUpdatedAt),
	}
}
