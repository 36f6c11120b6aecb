package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/infrastructure/metrics"
	"portfolio_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrContactNotFound  = errors.New("contact inquiry not found")
	ErrInvalidContactID = errors.New("invalid contact inquiry id")
)

// ContactInquiryInput is what the public contact form submits.
type ContactInquiryInput struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Message     string `json:"message" validate:"required"`
	InquiryType string `json:"inquiryType" validate:"required"`
}

// IContactInquiryUseCase covers the contact form and its admin review.
type IContactInquiryUseCase interface {
	Submit(ctx context.Context, in ContactInquiryInput) (entities.ContactInquiry, error)
	List(ctx context.Context, inquiryType string) ([]entities.ContactInquiry, error)
	GetByID(ctx context.Context, id string) (entities.ContactInquiry, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.ContactInquiry, error)
	Delete(ctx context.Context, id string) error
}

type ContactInquiryUseCase struct {
	repo   interfaces.IContactInquiryRepository
	logger *zap.Logger
}

var _ IContactInquiryUseCase = (*ContactInquiryUseCase)(nil)

func NewContactInquiryUseCase(repo interfaces.IContactInquiryRepository, logger *zap.Logger) *ContactInquiryUseCase {
	return &ContactInquiryUseCase{repo: repo, logger: logger.Named("contact")}
}

func (u *ContactInquiryUseCase) Submit(ctx context.Context, in ContactInquiryInput) (entities.ContactInquiry, error) {
	trimAll(&in.Name, &in.Phone, &in.Message, &in.InquiryType)
	if err := validateStruct(in).orNil(); err != nil {
		return entities.ContactInquiry{}, err
	}

	created, err := u.repo.Create(ctx, entities.ContactInquiry{
		Name:        in.Name,
		Phone:       in.Phone,
		Message:     in.Message,
		InquiryType: in.InquiryType,
		Status:      entities.ContactStatusNew,
	})
	if err != nil {
		return entities.ContactInquiry{}, err
	}

	metrics.RecordSubmission("contact")
	u.logger.Info("[contact][usecase] submit success",
		zap.String("id", created.ID),
		zap.String("inquiry_type", created.InquiryType),
	)
	return created, nil
}

// List returns every inquiry newest first, or only one inquiry type when
// inquiryType is set.
func (u *ContactInquiryUseCase) List(ctx context.Context, inquiryType string) ([]entities.ContactInquiry, error) {
	if inquiryType = strings.TrimSpace(inquiryType); inquiryType != "" {
		return u.repo.ListByInquiryType(ctx, inquiryType)
	}
	return u.repo.List(ctx)
}

func (u *ContactInquiryUseCase) GetByID(ctx context.Context, id string) (entities.ContactInquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactInquiry{}, ErrInvalidContactID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContactInquiry{}, err
	}
	if c.ID == "" {
		return entities.ContactInquiry{}, ErrContactNotFound
	}
	return c, nil
}

func (u *ContactInquiryUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.ContactInquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactInquiry{}, ErrInvalidContactID
	}
	status, err := requireStatus(status)
	if err != nil {
		return entities.ContactInquiry{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.ContactStatus(status))
	if err != nil {
		return entities.ContactInquiry{}, err
	}
	if updated.ID == "" {
		return entities.ContactInquiry{}, ErrContactNotFound
	}
	return updated, nil
}

func (u *ContactInquiryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	u.logger.Info("[contact][usecase] delete success", zap.String("id", id))
	return nil
}
