package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/infrastructure/metrics"
	"portfolio_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrChatSessionNotFound = errors.New("chat session not found")
	ErrInvalidSessionID    = errors.New("invalid chat session id")
)

const notifyTimeout = 15 * time.Second

// ChatMessageInput is one chat message as posted by a client.
type ChatMessageInput struct {
	SessionID string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Sender    string `json:"sender" validate:"required"`
}

type IChatUseCase interface {
	PostVisitorMessage(ctx context.Context, in ChatMessageInput) (entities.ChatMessage, error)
	PostAdminReply(ctx context.Context, sessionID, message string) (entities.ChatMessage, error)
	ListMessages(ctx context.Context, sessionID string) ([]entities.ChatMessage, error)
	ListSessions(ctx context.Context) ([]entities.ChatSession, error)
	UpdateSessionStatus(ctx context.Context, sessionID, status string) (entities.ChatSessionState, error)
	ResolveSession(ctx context.Context, sessionID string) (entities.ChatSessionState, error)
}

type ChatUseCase struct {
	messages   interfaces.IChatMessageRepository
	states     interfaces.IChatSessionStateRepository
	aggregator ISessionAggregator
	notifier   interfaces.INotifier
	logger     *zap.Logger

	notifications sync.WaitGroup
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(
	messages interfaces.IChatMessageRepository,
	states interfaces.IChatSessionStateRepository,
	aggregator ISessionAggregator,
	notifier interfaces.INotifier,
	logger *zap.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		messages:   messages,
		states:     states,
		aggregator: aggregator,
		notifier:   notifier,
		logger:     logger.Named("chat"),
	}
}

// PostVisitorMessage stores a message from the public widget and then tells
// the admin about it in the background.
func (u *ChatUseCase) PostVisitorMessage(ctx context.Context, in ChatMessageInput) (entities.ChatMessage, error) {
	trimAll(&in.SessionID, &in.Message, &in.Sender)
	verr := validateStruct(in)
	if in.Sender != "" && in.Sender != string(entities.ChatSenderUser) {
		verr.addInvalid("sender")
	}
	if err := verr.orNil(); err != nil {
		return entities.ChatMessage{}, err
	}

	created, err := u.messages.Create(ctx, entities.ChatMessage{
		SessionID: in.SessionID,
		Message:   in.Message,
		Sender:    entities.ChatSenderUser,
	})
	if err != nil {
		return entities.ChatMessage{}, err
	}
	metrics.RecordSubmission("chat_message")

	u.notifyAsync(created)
	return created, nil
}

func (u *ChatUseCase) PostAdminReply(ctx context.Context, sessionID, message string) (entities.ChatMessage, error) {
	in := ChatMessageInput{SessionID: sessionID, Message: message, Sender: string(entities.ChatSenderAdmin)}
	trimAll(&in.SessionID, &in.Message)
	if err := validateStruct(in).orNil(); err != nil {
		return entities.ChatMessage{}, err
	}

	return u.messages.Create(ctx, entities.ChatMessage{
		SessionID: in.SessionID,
		Message:   in.Message,
		Sender:    entities.ChatSenderAdmin,
	})
}

// notifyAsync never blocks the caller and never fails the request.
func (u *ChatUseCase) notifyAsync(m entities.ChatMessage) {
	if u.notifier == nil {
		return
	}
	u.notifications.Add(1)
	go func() {
		defer u.notifications.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := u.notifier.NotifyChatMessage(ctx, m)
		metrics.RecordNotification(err == nil)
		if err != nil {
			u.logger.Warn("[chat][usecase] admin notification failed",
				zap.String("session_id", m.SessionID),
				zap.String("message_id", m.ID),
				zap.Error(err),
			)
		}
	}()
}

// WaitForNotifications blocks until background notifications have finished.
func (u *ChatUseCase) WaitForNotifications() {
	u.notifications.Wait()
}

func (u *ChatUseCase) ListMessages(ctx context.Context, sessionID string) ([]entities.ChatMessage, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return u.messages.ListBySession(ctx, sessionID)
}

func (u *ChatUseCase) ListSessions(ctx context.Context) ([]entities.ChatSession, error) {
	return u.aggregator.Sessions(ctx)
}

// UpdateSessionStatus records the status on the session state first, then
// stamps it on every message. A partial message update is logged and left
// alone since the state record already decides what is displayed.
func (u *ChatUseCase) UpdateSessionStatus(ctx context.Context, sessionID, status string) (entities.ChatSessionState, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ChatSessionState{}, ErrInvalidSessionID
	}
	status, err := requireStatus(status)
	if err != nil {
		return entities.ChatSessionState{}, err
	}

	msgs, err := u.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return entities.ChatSessionState{}, err
	}
	if len(msgs) == 0 {
		return entities.ChatSessionState{}, ErrChatSessionNotFound
	}

	state, err := u.states.Upsert(ctx, sessionID, status)
	if err != nil {
		return entities.ChatSessionState{}, err
	}

	if _, err := u.messages.SetSessionStatus(ctx, sessionID, status); err != nil {
		var batchErr *interfaces.BatchUpdateError
		if !errors.As(err, &batchErr) {
			return entities.ChatSessionState{}, err
		}
		u.logger.Warn("[chat][usecase] session status only partially applied to messages",
			zap.String("session_id", sessionID),
			zap.Int("failed", len(batchErr.Failed)),
			zap.Error(err),
		)
	}

	u.logger.Info("[chat][usecase] session status updated", zap.String("session_id", sessionID), zap.String("status", status))
	return state, nil
}

func (u *ChatUseCase) ResolveSession(ctx context.Context, sessionID string) (entities.ChatSessionState, error) {
	return u.UpdateSessionStatus(ctx, sessionID, entities.ChatSessionStatusResolved)
}
