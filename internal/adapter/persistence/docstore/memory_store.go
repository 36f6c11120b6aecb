package docstore

import (
	"context"
	"sync"
	"time"

	"portfolio_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process memory. It backs local development
// and tests; nothing survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]interfaces.Document
	now         func() time.Time
	newID       func() string
	updateFault func(id string) error
}

var _ interfaces.IDocumentStore = (*MemoryStore)(nil)

type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now for createdAt stamping.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// WithIDGenerator replaces uuid generation.
func WithIDGenerator(newID func() string) MemoryOption {
	return func(s *MemoryStore) { s.newID = newID }
}

// WithUpdateFailures makes Update and BatchUpdate fail for every id fault
// returns an error for.
func WithUpdateFailures(fault func(id string) error) MemoryOption {
	return func(s *MemoryStore) { s.updateFault = fault }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		collections: make(map[string]map[string]interfaces.Document),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, collection string, doc interfaces.Document) (interfaces.Document, error) {
	stored := cloneDocument(doc)
	stored[interfaces.FieldID] = s.newID()
	stored[interfaces.FieldCreatedAt] = FormatTimestamp(s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[collection]
	if !ok {
		c = make(map[string]interfaces.Document)
		s.collections[collection] = c
	}
	c[stored[interfaces.FieldID].(string)] = stored
	return cloneDocument(stored), nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, interfaces.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

func (s *MemoryStore) List(_ context.Context, collection, orderBy string, dir interfaces.SortDirection) ([]interfaces.Document, error) {
	s.mu.RLock()
	docs := make([]interfaces.Document, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		docs = append(docs, cloneDocument(doc))
	}
	s.mu.RUnlock()

	if orderBy != "" {
		sortDocuments(docs, orderBy, dir)
	}
	return docs, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields interfaces.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(collection, id, fields)
}

func (s *MemoryStore) updateLocked(collection, id string, fields interfaces.Document) error {
	if s.updateFault != nil {
		if err := s.updateFault(id); err != nil {
			return err
		}
	}
	doc, ok := s.collections[collection][id]
	if !ok {
		return interfaces.ErrDocumentNotFound
	}
	for k, v := range fields {
		if k == interfaces.FieldID || k == interfaces.FieldCreatedAt {
			continue
		}
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) Query(_ context.Context, collection, field string, value any) ([]interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []interfaces.Document
	for _, doc := range s.collections[collection] {
		if matches(doc, field, value) {
			docs = append(docs, cloneDocument(doc))
		}
	}
	return docs, nil
}

func (s *MemoryStore) BatchUpdate(_ context.Context, collection string, ids []string, fields interfaces.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	failed := make(map[string]error)
	for _, id := range ids {
		if err := s.updateLocked(collection, id, fields); err != nil {
			failed[id] = err
		}
	}
	if len(failed) > 0 {
		return &interfaces.BatchUpdateError{Collection: collection, Failed: failed}
	}
	return nil
}
