package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *docstore.MemoryStore {
	n := 0
	clock := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return docstore.NewMemoryStore(
		docstore.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%02d", n)
		}),
		docstore.WithClock(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}),
	)
}

func TestContactInquiryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactInquiryRepository(newStore())

	first, err := repo.Create(ctx, entities.ContactInquiry{Name: "Ana", Phone: "+1 555", Message: "Hi", InquiryType: entities.InquiryTypeNewOrder, Status: entities.ContactStatusNew})
	require.NoError(t, err)
	assert.Equal(t, "id-01", first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Nil(t, first.UpdatedAt)

	_, err = repo.Create(ctx, entities.ContactInquiry{Name: "Bo", InquiryType: entities.InquiryTypeGeneral, Status: entities.ContactStatusNew})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.ContactInquiry{Name: "Cy", InquiryType: entities.InquiryTypeNewOrder, Status: entities.ContactStatusNew})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Cy", all[0].Name)

	orders, err := repo.ListByInquiryType(ctx, entities.InquiryTypeNewOrder)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Cy", orders[0].Name)
	assert.Equal(t, "Ana", orders[1].Name)

	updated, err := repo.UpdateStatus(ctx, first.ID, entities.ContactStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entities.ContactStatusCompleted, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)
	assert.True(t, first.CreatedAt.Equal(updated.CreatedAt))

	missing, err := repo.UpdateStatus(ctx, "ghost", entities.ContactStatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	gone, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestReceiptRequestRepository(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	repo := NewReceiptRequestRepository(store)

	created, err := repo.Create(ctx, entities.ReceiptRequest{
		FullName:       "Ana Silva",
		Phone:          "+1 555 0100",
		ProjectService: "Logo design",
		AmountPaid:     decimal.RequireFromString("150"),
		Date:           "2024-01-15",
		Status:         entities.ReceiptStatusPending,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "150.00", got.AmountPaid.StringFixed(2))
	assert.Equal(t, "2024-01-15", got.Date)
	assert.Empty(t, got.Notes)

	t.Run("reads legacy numeric amounts", func(t *testing.T) {
		doc, err := store.Create(ctx, CollectionReceiptRequests, interfaces.Document{"fullName": "Old", "amountPaid": 99.5})
		require.NoError(t, err)
		legacy, err := repo.GetByID(ctx, doc["id"].(string))
		require.NoError(t, err)
		assert.Equal(t, "99.50", legacy.AmountPaid.StringFixed(2))
	})

	t.Run("rejects garbage amounts", func(t *testing.T) {
		doc, err := store.Create(ctx, CollectionReceiptRequests, interfaces.Document{"amountPaid": "lots"})
		require.NoError(t, err)
		_, err = repo.GetByID(ctx, doc["id"].(string))
		assert.Error(t, err)
	})
}

func TestChatRepositories(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	messages := NewChatMessageRepository(store)
	states := NewChatSessionStateRepository(store)

	for _, m := range []entities.ChatMessage{
		{SessionID: "s1", Message: "hello", Sender: entities.ChatSenderUser},
		{SessionID: "s2", Message: "yo", Sender: entities.ChatSenderUser},
		{SessionID: "s1", Message: "hi back", Sender: entities.ChatSenderAdmin},
	} {
		_, err := messages.Create(ctx, m)
		require.NoError(t, err)
	}

	s1, err := messages.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, s1, 2)
	assert.Equal(t, "hello", s1[0].Message)
	assert.Equal(t, entities.ChatSenderAdmin, s1[1].Sender)

	n, err := messages.SetSessionStatus(ctx, "s1", entities.ChatSessionStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	s1, _ = messages.ListBySession(ctx, "s1")
	assert.Equal(t, entities.ChatSessionStatusResolved, s1[0].Status)

	none, err := messages.SetSessionStatus(ctx, "nobody", "resolved")
	require.NoError(t, err)
	assert.Zero(t, none)

	first, err := states.Upsert(ctx, "s1", entities.ChatSessionStatusResolved)
	require.NoError(t, err)
	second, err := states.Upsert(ctx, "s1", entities.ChatSessionStatusActive)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := states.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entities.ChatSessionStatusActive, all[0].Status)

	empty, err := states.GetBySessionID(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, empty.ID)
}

func TestAdminCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminCredentialRepository(newStore())

	cred, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, cred.ID, "unprovisioned store has no credential")

	saved, err := repo.Save(ctx, "admin", "hash-1")
	require.NoError(t, err)
	resaved, err := repo.Save(ctx, "owner", "hash-2")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, resaved.ID)
	assert.Equal(t, "owner", resaved.Username)
	assert.Equal(t, "hash-2", resaved.PasswordHash)
}
