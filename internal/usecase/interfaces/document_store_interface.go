package interfaces

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Document is one untyped record in a collection. Values are JSON-like scalars.
type Document map[string]any

// Reserved document fields. The store owns both.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

var ErrDocumentNotFound = errors.New("document not found")

// BatchUpdateError reports the ids a BatchUpdate could not write. Updates to
// every other id were applied.
type BatchUpdateError struct {
	Collection string
	Failed     map[string]error
}

func (e *BatchUpdateError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return fmt.Sprintf("batch update on %s failed for %d document(s): %s", e.Collection, len(ids), strings.Join(ids, ", "))
}

// IDocumentStore is CRUD over named collections.
//
// Create generates the id and stamps createdAt. Update and BatchUpdate merge
// the given fields into the stored document.
//
//go:generate mockgen -source=document_store_interface.go -destination=mocks/document_store_mock.go -package=mock_interfaces
type IDocumentStore interface {
	Create(ctx context.Context, collection string, doc Document) (Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection, orderBy string, dir SortDirection) ([]Document, error)
	Update(ctx context.Context, collection, id string, fields Document) error
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection, field string, value any) ([]Document, error)
	BatchUpdate(ctx context.Context, collection string, ids []string, fields Document) error
}
