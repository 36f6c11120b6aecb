package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/adapter/persistence/repository"
	"portfolio_backend/internal/domain/entities"
	mock_interfaces "portfolio_backend/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestStore(opts ...docstore.MemoryOption) *docstore.MemoryStore {
	n := 0
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	opts = append([]docstore.MemoryOption{
		docstore.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("doc-%03d", n)
		}),
		docstore.WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	}, opts...)
	return docstore.NewMemoryStore(opts...)
}

type chatFixture struct {
	notifier *mock_interfaces.MockINotifier
	uc       *ChatUseCase
}

func newChatFixture(t *testing.T, opts ...docstore.MemoryOption) chatFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := newTestStore(opts...)
	messages := repository.NewChatMessageRepository(store)
	states := repository.NewChatSessionStateRepository(store)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	uc := NewChatUseCase(messages, states, NewScanSessionAggregator(messages, states), notifier, zap.NewNop())
	return chatFixture{notifier: notifier, uc: uc}
}

func TestChatUseCase_PostVisitorMessage(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		f := newChatFixture(t)
		_, err := f.uc.PostVisitorMessage(context.Background(), ChatMessageInput{SessionID: "s-1", Sender: "admin"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"message"}, verr.MissingFields)
		assert.Equal(t, []string{"sender"}, verr.InvalidFields)
	})

	t.Run("stores and notifies", func(t *testing.T) {
		f := newChatFixture(t)
		f.notifier.EXPECT().NotifyChatMessage(gomock.Any(), gomock.AssignableToTypeOf(entities.ChatMessage{})).DoAndReturn(
			func(_ context.Context, m entities.ChatMessage) error {
				assert.Equal(t, "s-1", m.SessionID)
				assert.Equal(t, "hello", m.Message)
				return nil
			},
		)

		msg, err := f.uc.PostVisitorMessage(context.Background(), ChatMessageInput{SessionID: " s-1 ", Message: "hello", Sender: "user"})
		require.NoError(t, err)
		f.uc.WaitForNotifications()

		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, entities.ChatSenderUser, msg.Sender)
		assert.False(t, msg.CreatedAt.IsZero())
	})

	t.Run("notification failure does not fail the post", func(t *testing.T) {
		f := newChatFixture(t)
		f.notifier.EXPECT().NotifyChatMessage(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := f.uc.PostVisitorMessage(context.Background(), ChatMessageInput{SessionID: "s-1", Message: "hi", Sender: "user"})
		require.NoError(t, err)
		f.uc.WaitForNotifications()
	})
}

func TestChatUseCase_Conversation(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)
	f.notifier.EXPECT().NotifyChatMessage(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	_, err := f.uc.PostVisitorMessage(ctx, ChatMessageInput{SessionID: "s-1", Message: "first", Sender: "user"})
	require.NoError(t, err)
	_, err = f.uc.PostAdminReply(ctx, "s-1", "reply")
	require.NoError(t, err)
	_, err = f.uc.PostVisitorMessage(ctx, ChatMessageInput{SessionID: "s-2", Message: "other", Sender: "user"})
	require.NoError(t, err)
	_, err = f.uc.PostVisitorMessage(ctx, ChatMessageInput{SessionID: "s-1", Message: "second", Sender: "user"})
	require.NoError(t, err)
	f.uc.WaitForNotifications()

	msgs, err := f.uc.ListMessages(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"first", "reply", "second"}, []string{msgs[0].Message, msgs[1].Message, msgs[2].Message})
	assert.Equal(t, entities.ChatSenderAdmin, msgs[1].Sender)

	sessions, err := f.uc.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s-1", sessions[0].SessionID)
	assert.Equal(t, 3, sessions[0].MessageCount)
	assert.Equal(t, entities.ChatSessionStatusActive, sessions[0].Status)

	state, err := f.uc.ResolveSession(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, entities.ChatSessionStatusResolved, state.Status)

	msgs, err = f.uc.ListMessages(ctx, "s-1")
	require.NoError(t, err)
	for _, m := range msgs {
		assert.Equal(t, entities.ChatSessionStatusResolved, m.Status)
	}

	sessions, err = f.uc.ListSessions(ctx)
	require.NoError(t, err)
	statuses := map[string]string{}
	for _, s := range sessions {
		statuses[s.SessionID] = s.Status
	}
	assert.Equal(t, map[string]string{"s-1": "resolved", "s-2": "active"}, statuses)
}

func TestChatUseCase_UpdateSessionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		f := newChatFixture(t)
		_, err := f.uc.UpdateSessionStatus(ctx, "nope", "resolved")
		assert.ErrorIs(t, err, ErrChatSessionNotFound)
	})

	t.Run("empty session id", func(t *testing.T) {
		f := newChatFixture(t)
		_, err := f.uc.UpdateSessionStatus(ctx, " ", "resolved")
		assert.ErrorIs(t, err, ErrInvalidSessionID)
		_, err = f.uc.ListMessages(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidSessionID)
	})

	t.Run("partial message update still succeeds", func(t *testing.T) {
		var conflicted string
		f := newChatFixture(t, docstore.WithUpdateFailures(func(id string) error {
			if id == conflicted {
				return errors.New("write conflict")
			}
			return nil
		}))
		a, err := f.uc.PostAdminReply(ctx, "s-1", "one")
		require.NoError(t, err)
		_, err = f.uc.PostAdminReply(ctx, "s-1", "two")
		require.NoError(t, err)
		conflicted = a.ID

		state, err := f.uc.UpdateSessionStatus(ctx, "s-1", "resolved")
		require.NoError(t, err)
		assert.Equal(t, "resolved", state.Status)

		sessions, err := f.uc.ListSessions(ctx)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "resolved", sessions[0].Status)
	})

	t.Run("reopen", func(t *testing.T) {
		f := newChatFixture(t)
		_, err := f.uc.PostAdminReply(ctx, "s-1", "one")
		require.NoError(t, err)
		_, err = f.uc.ResolveSession(ctx, "s-1")
		require.NoError(t, err)
		state, err := f.uc.UpdateSessionStatus(ctx, "s-1", "active")
		require.NoError(t, err)
		assert.Equal(t, "active", state.Status)

		sessions, err := f.uc.ListSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, "active", sessions[0].Status)
	})
}
