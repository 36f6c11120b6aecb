package repository

import (
	"context"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"
)

// AdminCredentialRepository reads the oldest document of the admin collection.
// Provisioning always rewrites that same document.
type AdminCredentialRepository struct {
	store interfaces.IDocumentStore
	now   func() time.Time
}

var _ interfaces.IAdminCredentialRepository = (*AdminCredentialRepository)(nil)

func NewAdminCredentialRepository(store interfaces.IDocumentStore) *AdminCredentialRepository {
	return &AdminCredentialRepository{store: store, now: time.Now}
}

func (r *AdminCredentialRepository) Get(ctx context.Context) (entities.AdminCredential, error) {
	docs, err := r.store.List(ctx, CollectionAdmin, "", interfaces.SortAscending)
	if err != nil {
		return entities.AdminCredential{}, err
	}
	if len(docs) == 0 {
		return entities.AdminCredential{}, nil
	}
	creds := make([]entities.AdminCredential, 0, len(docs))
	for _, doc := range docs {
		creds = append(creds, fromAdminDocument(doc))
	}
	sortOldestFirst(creds, func(c entities.AdminCredential) time.Time { return c.CreatedAt })
	return creds[0], nil
}

func (r *AdminCredentialRepository) Save(ctx context.Context, username, passwordHash string) (entities.AdminCredential, error) {
	current, err := r.Get(ctx)
	if err != nil {
		return entities.AdminCredential{}, err
	}

	fields := interfaces.Document{
		"username":     username,
		"passwordHash": passwordHash,
		"updatedAt":    docstore.FormatTimestamp(r.now()),
	}

	if current.ID == "" {
		doc, err := r.store.Create(ctx, CollectionAdmin, fields)
		if err != nil {
			return entities.AdminCredential{}, err
		}
		return fromAdminDocument(doc), nil
	}

	if err := r.store.Update(ctx, CollectionAdmin, current.ID, fields); err != nil {
		return entities.AdminCredential{}, err
	}
	doc, err := r.store.Get(ctx, CollectionAdmin, current.ID)
	if err != nil {
		return entities.AdminCredential{}, err
	}
	return fromAdminDocument(doc), nil
}

func fromAdminDocument(doc interfaces.Document) entities.AdminCredential {
	return entities.AdminCredential{
		ID:           getString(doc, interfaces.FieldID),
		Username:     getString(doc, "username"),
		PasswordHash: getString(doc, "passwordHash"),
		CreatedAt:    getTime(doc, interfaces.FieldCreatedAt),
		UpdatedAt:    getTime(doc, fieldUpdatedAt),
	}
}
