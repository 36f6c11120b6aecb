package docstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"portfolio_backend/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("doc-%d", n)
	}
}

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	current := start.Add(-step)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func TestMemoryStore_CreateGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(WithClock(func() time.Time { return now }), WithIDGenerator(sequentialIDs()))

	created, err := s.Create(ctx, "contacts", interfaces.Document{"name": "Ana", "id": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", created[interfaces.FieldID])
	assert.Equal(t, "2024-01-15T10:00:00.000000000Z", created[interfaces.FieldCreatedAt])

	got, err := s.Get(ctx, "contacts", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got["name"])

	got["name"] = "mutated"
	again, err := s.Get(ctx, "contacts", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", again["name"], "returned documents must be copies")

	_, err = s.Get(ctx, "contacts", "missing")
	assert.ErrorIs(t, err, interfaces.ErrDocumentNotFound)
}

func TestMemoryStore_ListOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(
		WithClock(steppingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Second)),
		WithIDGenerator(sequentialIDs()),
	)
	for _, name := range []string{"a", "b", "c"} {
		_, err := s.Create(ctx, "contacts", interfaces.Document{"name": name})
		require.NoError(t, err)
	}

	desc, err := s.List(ctx, "contacts", interfaces.FieldCreatedAt, interfaces.SortDescending)
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, []any{"c", "b", "a"}, []any{desc[0]["name"], desc[1]["name"], desc[2]["name"]})

	asc, err := s.List(ctx, "contacts", interfaces.FieldCreatedAt, interfaces.SortAscending)
	require.NoError(t, err)
	assert.Equal(t, "a", asc[0]["name"])

	empty, err := s.List(ctx, "unknown", interfaces.FieldCreatedAt, interfaces.SortDescending)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_UpdateDeleteQuery(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(WithIDGenerator(sequentialIDs()))
	_, _ = s.Create(ctx, "chatMessages", interfaces.Document{"sessionId": "s1"})
	_, _ = s.Create(ctx, "chatMessages", interfaces.Document{"sessionId": "s2"})
	_, _ = s.Create(ctx, "chatMessages", interfaces.Document{"sessionId": "s1"})

	require.NoError(t, s.Update(ctx, "chatMessages", "doc-1", interfaces.Document{"status": "resolved", "createdAt": "nope"}))
	got, _ := s.Get(ctx, "chatMessages", "doc-1")
	assert.Equal(t, "resolved", got["status"])
	assert.NotEqual(t, "nope", got[interfaces.FieldCreatedAt])

	err := s.Update(ctx, "chatMessages", "missing", interfaces.Document{"status": "x"})
	assert.ErrorIs(t, err, interfaces.ErrDocumentNotFound)

	found, err := s.Query(ctx, "chatMessages", "sessionId", "s1")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	require.NoError(t, s.Delete(ctx, "chatMessages", "doc-2"))
	_, err = s.Get(ctx, "chatMessages", "doc-2")
	assert.ErrorIs(t, err, interfaces.ErrDocumentNotFound)
}

func TestMemoryStore_BatchUpdatePartialFailure(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(
		WithIDGenerator(sequentialIDs()),
		WithUpdateFailures(func(id string) error {
			if id == "doc-2" {
				return errors.New("write rejected")
			}
			return nil
		}),
	)
	_, _ = s.Create(ctx, "chatMessages", interfaces.Document{"sessionId": "s1"})
	_, _ = s.Create(ctx, "chatMessages", interfaces.Document{"sessionId": "s1"})

	err := s.BatchUpdate(ctx, "chatMessages", []string{"doc-1", "doc-2", "doc-9"}, interfaces.Document{"status": "resolved"})

	var batchErr *interfaces.BatchUpdateError
	require.ErrorAs(t, err, &batchErr)
	assert.Len(t, batchErr.Failed, 2)
	assert.Contains(t, err.Error(), "doc-2, doc-9")

	applied, _ := s.Get(ctx, "chatMessages", "doc-1")
	assert.Equal(t, "resolved", applied["status"])
}
