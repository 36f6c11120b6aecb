package repository

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Collection names shared with the data already written by the public site.
const (
	CollectionContacts          = "contacts"
	CollectionReceiptRequests   = "receiptRequests"
	CollectionChatMessages      = "chatMessages"
	CollectionChatSessionStates = "chatSessionStates"
	CollectionAdmin             = "admin"
)

const (
	fieldStatus    = "status"
	fieldUpdatedAt = "updatedAt"
	fieldSessionID = "sessionId"
)

func getString(doc interfaces.Document, key string) string {
	switch v := doc[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func getTime(doc interfaces.Document, key string) time.Time {
	t, _ := docstore.ParseTimestamp(doc[key])
	return t
}

func getOptionalTime(doc interfaces.Document, key string) *time.Time {
	t, ok := docstore.ParseTimestamp(doc[key])
	if !ok {
		return nil
	}
	return &t
}

// getDecimal accepts the decimal string we write as well as plain JSON numbers.
func getDecimal(doc interfaces.Document, key string) (decimal.Decimal, error) {
	switch v := doc[key].(type) {
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case nil:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported %s type %T", key, v)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrDocumentNotFound)
}

func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func sortOldestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).Before(createdAt(items[j]))
	})
}
