package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"
)

// ReceiptRequestRepository stores receipt requests in the receiptRequests collection.
//
// amountPaid is written as a decimal string. Older documents carry a plain
// number and are still read.
type ReceiptRequestRepository struct {
	store interfaces.IDocumentStore
	now   func() time.Time
}

var _ interfaces.IReceiptRequestRepository = (*ReceiptRequestRepository)(nil)

func NewReceiptRequestRepository(store interfaces.IDocumentStore) *ReceiptRequestRepository {
	return &ReceiptRequestRepository{store: store, now: time.Now}
}

func (r *ReceiptRequestRepository) Create(ctx context.Context, rr entities.ReceiptRequest) (entities.ReceiptRequest, error) {
	doc, err := r.store.Create(ctx, CollectionReceiptRequests, toReceiptDocument(rr))
	if err != nil {
		return entities.ReceiptRequest{}, err
	}
	return fromReceiptDocument(doc)
}

func (r *ReceiptRequestRepository) GetByID(ctx context.Context, id string) (entities.ReceiptRequest, error) {
	doc, err := r.store.Get(ctx, CollectionReceiptRequests, id)
	if err != nil {
		if isNotFound(err) {
			return entities.ReceiptRequest{}, nil
		}
		return entities.ReceiptRequest{}, err
	}
	return fromReceiptDocument(doc)
}

func (r *ReceiptRequestRepository) List(ctx context.Context) ([]entities.ReceiptRequest, error) {
	docs, err := r.store.List(ctx, CollectionReceiptRequests, interfaces.FieldCreatedAt, interfaces.SortDescending)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ReceiptRequest, 0, len(docs))
	for _, doc := range docs {
		rr, err := fromReceiptDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, nil
}

func (r *ReceiptRequestRepository) UpdateStatus(ctx context.Context, id string, status entities.ReceiptStatus) (entities.ReceiptRequest, error) {
	err := r.store.Update(ctx, CollectionReceiptRequests, id, interfaces.Document{
		fieldStatus:    string(status),
		fieldUpdatedAt: docstore.FormatTimestamp(r.now()),
	})
	if err != nil {
		if isNotFound(err) {
			return entities.ReceiptRequest{}, nil
		}
		return entities.ReceiptRequest{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ReceiptRequestRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, CollectionReceiptRequests, id)
}

func toReceiptDocument(rr entities.ReceiptRequest) interfaces.Document {
	doc := interfaces.Document{
		"fullName":       rr.FullName,
		"phone":          rr.Phone,
		"projectService": rr.ProjectService,
		"amountPaid":     rr.AmountPaid.StringFixed(2),
		"date":           rr.Date,
		fieldStatus:      string(rr.Status),
	}
	if rr.Email != "" {
		doc["email"] = rr.Email
	}
	if rr.Notes != "" {
		doc["notes"] = rr.Notes
	}
	return doc
}

func fromReceiptDocument(doc interfaces.Document) (entities.ReceiptRequest, error) {
	amount, err := getDecimal(doc, "amountPaid")
	if err != nil {
		return entities.ReceiptRequest{}, fmt.Errorf("receipt request %s: invalid amountPaid: %w", getString(doc, interfaces.FieldID), err)
	}
	return entities.ReceiptRequest{
		ID:             getString(doc, interfaces.FieldID),
		FullName:       getString(doc, "fullName"),
		Phone:          getString(doc, "phone"),
		Email:          getString(doc, "email"),
		ProjectService: getString(doc, "projectService"),
		AmountPaid:     amount,
		Date:           getString(doc, "date"),
		Notes:          getString(doc, "notes"),
		Status:         entities.ReceiptStatus(getString(doc, fieldStatus)),
		CreatedAt:      getTime(doc, interfaces.FieldCreatedAt),
		UpdatedAt:      getOptionalTime(doc, fieldUpdatedAt),
	}, nil
}
