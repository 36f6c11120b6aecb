package docstore

import (
	"context"
	"errors"
	"time"

	"portfolio_backend/internal/infrastructure/metrics"
	"portfolio_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// InstrumentedStore records metrics for every call and logs store failures.
type InstrumentedStore struct {
	next   interfaces.IDocumentStore
	logger *zap.Logger
}

var _ interfaces.IDocumentStore = (*InstrumentedStore)(nil)

func NewInstrumentedStore(next interfaces.IDocumentStore, logger *zap.Logger) *InstrumentedStore {
	return &InstrumentedStore{next: next, logger: logger.Named("docstore")}
}

func (s *InstrumentedStore) observe(op, collection string, start time.Time, err error) {
	metrics.RecordStoreOperation(op, collection, time.Since(start), err)
	if err != nil && !errors.Is(err, interfaces.ErrDocumentNotFound) {
		s.logger.Error("[store][docstore] operation failed",
			zap.String("operation", op),
			zap.String("collection", collection),
			zap.Error(err),
		)
	}
}

func (s *InstrumentedStore) Create(ctx context.Context, collection string, doc interfaces.Document) (interfaces.Document, error) {
	start := time.Now()
	out, err := s.next.Create(ctx, collection, doc)
	s.observe("create", collection, start, err)
	return out, err
}

func (s *InstrumentedStore) Get(ctx context.Context, collection, id string) (interfaces.Document, error) {
	start := time.Now()
	out, err := s.next.Get(ctx, collection, id)
	s.observe("get", collection, start, err)
	return out, err
}

func (s *InstrumentedStore) List(ctx context.Context, collection, orderBy string, dir interfaces.SortDirection) ([]interfaces.Document, error) {
	start := time.Now()
	out, err := s.next.List(ctx, collection, orderBy, dir)
	s.observe("list", collection, start, err)
	return out, err
}

func (s *InstrumentedStore) Update(ctx context.Context, collection, id string, fields interfaces.Document) error {
	start := time.Now()
	err := s.next.Update(ctx, collection, id, fields)
	s.observe("update", collection, start, err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, collection, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, collection, id)
	s.observe("delete", collection, start, err)
	return err
}

func (s *InstrumentedStore) Query(ctx context.Context, collection, field string, value any) ([]interfaces.Document, error) {
	start := time.Now()
	out, err := s.next.Query(ctx, collection, field, value)
	s.observe("query", collection, start, err)
	return out, err
}

func (s *InstrumentedStore) BatchUpdate(ctx context.Context, collection string, ids []string, fields interfaces.Document) error {
	start := time.Now()
	err := s.next.BatchUpdate(ctx, collection, ids, fields)
	s.observe("batch_update", collection, start, err)
	return err
}
