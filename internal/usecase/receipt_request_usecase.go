package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/infrastructure/metrics"
	"portfolio_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrReceiptRequestNotFound  = errors.New("receipt request not found")
	ErrInvalidReceiptRequestID = errors.New("invalid receipt request id")
)

// ReceiptRequestInput is what the public receipt form submits. AmountPaid is
// the raw amount text so malformed numbers surface as invalid fields.
type ReceiptRequestInput struct {
	FullName       string `json:"fullName" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	ProjectService string `json:"projectService" validate:"required"`
	AmountPaid     string `json:"amountPaid" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Notes          string `json:"notes"`
}

type IReceiptRequestUseCase interface {
	Submit(ctx context.Context, in ReceiptRequestInput) (entities.ReceiptRequest, error)
	List(ctx context.Context) ([]entities.ReceiptRequest, error)
	GetByID(ctx context.Context, id string) (entities.ReceiptRequest, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.ReceiptRequest, error)
	Delete(ctx context.Context, id string) error
	GenerateReceipt(ctx context.Context, id string) (entities.ReceiptRequest, []byte, error)
}

type ReceiptRequestUseCase struct {
	repo     interfaces.IReceiptRequestRepository
	renderer interfaces.IReceiptRenderer
	logger   *zap.Logger
}

var _ IReceiptRequestUseCase = (*ReceiptRequestUseCase)(nil)

func NewReceiptRequestUseCase(repo interfaces.IReceiptRequestRepository, renderer interfaces.IReceiptRenderer, logger *zap.Logger) *ReceiptRequestUseCase {
	return &ReceiptRequestUseCase{repo: repo, renderer: renderer, logger: logger.Named("receipt")}
}

func (u *ReceiptRequestUseCase) Submit(ctx context.Context, in ReceiptRequestInput) (entities.ReceiptRequest, error) {
	trimAll(&in.FullName, &in.Phone, &in.Email, &in.ProjectService, &in.AmountPaid, &in.Date, &in.Notes)

	verr := validateStruct(in)
	var amount decimal.Decimal
	if in.AmountPaid != "" {
		parsed, err := decimal.NewFromString(in.AmountPaid)
		if err != nil || parsed.IsNegative() {
			verr.addInvalid("amountPaid")
		}
		amount = parsed
	}
	var date string
	if in.Date != "" {
		normalized, ok := normalizeReceiptDate(in.Date)
		if !ok {
			verr.addInvalid("date")
		}
		date = normalized
	}
	if err := verr.orNil(); err != nil {
		return entities.ReceiptRequest{}, err
	}

	created, err := u.repo.Create(ctx, entities.ReceiptRequest{
		FullName:       in.FullName,
		Phone:          in.Phone,
		Email:          in.Email,
		ProjectService: in.ProjectService,
		AmountPaid:     amount,
		Date:           date,
		Notes:          in.Notes,
		Status:         entities.ReceiptStatusPending,
	})
	if err != nil {
		return entities.ReceiptRequest{}, err
	}

	metrics.RecordSubmission("receipt_request")
	u.logger.Info("[receipt][usecase] submit success", zap.String("id", created.ID))
	return created, nil
}

// normalizeReceiptDate accepts YYYY-MM-DD or an RFC3339 timestamp and keeps
// only the calendar date.
func normalizeReceiptDate(raw string) (string, bool) {
	if t, err := time.Parse(entities.ReceiptDateLayout, raw); err == nil {
		return t.Format(entities.ReceiptDateLayout), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(entities.ReceiptDateLayout), true
	}
	return "", false
}

func (u *ReceiptRequestUseCase) List(ctx context.Context) ([]entities.ReceiptRequest, error) {
	return u.repo.List(ctx)
}

func (u *ReceiptRequestUseCase) GetByID(ctx context.Context, id string) (entities.ReceiptRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ReceiptRequest{}, ErrInvalidReceiptRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ReceiptRequest{}, err
	}
	if r.ID == "" {
		return entities.ReceiptRequest{}, ErrReceiptRequestNotFound
	}
	return r, nil
}

func (u *ReceiptRequestUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.ReceiptRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ReceiptRequest{}, ErrInvalidReceiptRequestID
	}
	status, err := requireStatus(status)
	if err != nil {
		return entities.ReceiptRequest{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.ReceiptStatus(status))
	if err != nil {
		return entities.ReceiptRequest{}, err
	}
	if updated.ID == "" {
		return entities.ReceiptRequest{}, ErrReceiptRequestNotFound
	}
	return updated, nil
}

func (u *ReceiptRequestUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	u.logger.Info("[receipt][usecase] delete success", zap.String("id", id))
	return nil
}

// GenerateReceipt renders the PDF receipt for a stored request. It does not
// change the request's status.
func (u *ReceiptRequestUseCase) GenerateReceipt(ctx context.Context, id string) (entities.ReceiptRequest, []byte, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ReceiptRequest{}, nil, err
	}

	pdf, err := u.renderer.Render(r)
	metrics.RecordReceiptRendered(err == nil)
	if err != nil {
		u.logger.Error("[receipt][usecase] render failed", zap.String("id", r.ID), zap.Error(err))
		return entities.ReceiptRequest{}, nil, err
	}
	return r, pdf, nil
}
