package repository

import (
	"context"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"
)

// ContactInquiryRepository stores contact inquiries in the contacts collection.
type ContactInquiryRepository struct {
	store interfaces.IDocumentStore
	now   func() time.Time
}

var _ interfaces.IContactInquiryRepository = (*ContactInquiryRepository)(nil)

func NewContactInquiryRepository(store interfaces.IDocumentStore) *ContactInquiryRepository {
	return &ContactInquiryRepository{store: store, now: time.Now}
}

func (r *ContactInquiryRepository) Create(ctx context.Context, c entities.ContactInquiry) (entities.ContactInquiry, error) {
	doc, err := r.store.Create(ctx, CollectionContacts, toContactDocument(c))
	if err != nil {
		return entities.ContactInquiry{}, err
	}
	return fromContactDocument(doc), nil
}

func (r *ContactInquiryRepository) GetByID(ctx context.Context, id string) (entities.ContactInquiry, error) {
	doc, err := r.store.Get(ctx, CollectionContacts, id)
	if err != nil {
		if isNotFound(err) {
			return entities.ContactInquiry{}, nil
		}
		return entities.ContactInquiry{}, err
	}
	return fromContactDocument(doc), nil
}

func (r *ContactInquiryRepository) List(ctx context.Context) ([]entities.ContactInquiry, error) {
	docs, err := r.store.List(ctx, CollectionContacts, interfaces.FieldCreatedAt, interfaces.SortDescending)
	if err != nil {
		return nil, err
	}
	return fromContactDocuments(docs), nil
}

// ListByInquiryType returns newest first like List.
func (r *ContactInquiryRepository) ListByInquiryType(ctx context.Context, inquiryType string) ([]entities.ContactInquiry, error) {
	docs, err := r.store.Query(ctx, CollectionContacts, "inquiryType", inquiryType)
	if err != nil {
		return nil, err
	}
	out := fromContactDocuments(docs)
	sortNewestFirst(out, func(c entities.ContactInquiry) time.Time { return c.CreatedAt })
	return out, nil
}

func (r *ContactInquiryRepository) UpdateStatus(ctx context.Context, id string, status entities.ContactStatus) (entities.ContactInquiry, error) {
	err := r.store.Update(ctx, CollectionContacts, id, interfaces.Document{
		fieldStatus:    string(status),
		fieldUpdatedAt: docstore.FormatTimestamp(r.now()),
	})
	if err != nil {
		if isNotFound(err) {
			return entities.ContactInquiry{}, nil
		}
		return entities.ContactInquiry{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ContactInquiryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, CollectionContacts, id)
}

func toContactDocument(c entities.ContactInquiry) interfaces.Document {
	return interfaces.Document{
		"name":        c.Name,
		"phone":       c.Phone,
		"message":     c.Message,
		"inquiryType": c.InquiryType,
		fieldStatus:   string(c.Status),
	}
}

func fromContactDocument(doc interfaces.Document) entities.ContactInquiry {
	return entities.ContactInquiry{
		ID:          getString(doc, interfaces.FieldID),
		Name:        getString(doc, "name"),
		Phone:       getString(doc, "phone"),
		Message:     getString(doc, "message"),
		InquiryType: getString(doc, "inquiryType"),
		Status:      entities.ContactStatus(getString(doc, fieldStatus)),
		CreatedAt:   getTime(doc, interfaces.FieldCreatedAt),
		UpdatedAt:   getOptionalTime(doc, fieldUpdatedAt),
	}
}

func fromContactDocuments(docs []interfaces.Document) []entities.ContactInquiry {
	out := make([]entities.ContactInquiry, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromContactDocument(doc))
	}
	return out
}
