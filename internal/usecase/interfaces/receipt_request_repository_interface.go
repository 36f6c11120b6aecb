package interfaces

import (
	"context"
	"portfolio_backend/internal/domain/entities"
)

//go:generate mockgen -source=receipt_request_repository_interface.go -destination=mocks/receipt_request_repository_mock.go -package=mock_interfaces
type IReceiptRequestRepository interface {
	Create(ctx context.Context, r entities.ReceiptRequest) (entities.ReceiptRequest, error)
	GetByID(ctx context.Context, id string) (entities.ReceiptRequest, error)
	List(ctx context.Context) ([]entities.ReceiptRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.ReceiptStatus) (entities.ReceiptRequest, error)
	Delete(ctx context.Context, id string) error
}
