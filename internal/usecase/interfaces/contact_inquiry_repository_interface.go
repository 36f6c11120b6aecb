package interfaces

import (
	"context"
	"portfolio_backend/internal/domain/entities"
)

// IContactInquiryRepository persists contact inquiries.
//
// Lookups return a zero ContactInquiry (empty ID) when nothing matches.
//
//go:generate mockgen -source=contact_inquiry_repository_interface.go -destination=mocks/contact_inquiry_repository_mock.go -package=mock_interfaces
type IContactInquiryRepository interface {
	Create(ctx context.Context, c entities.ContactInquiry) (entities.ContactInquiry, error)
	GetByID(ctx context.Context, id string) (entities.ContactInquiry, error)
	List(ctx context.Context) ([]entities.ContactInquiry, error)
	ListByInquiryType(ctx context.Context, inquiryType string) ([]entities.ContactInquiry, error)
	UpdateStatus(ctx context.Context, id string, status entities.ContactStatus) (entities.ContactInquiry, error)
	Delete(ctx context.Context, id string) error
}
