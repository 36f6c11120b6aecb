package interfaces

import "portfolio_backend/internal/domain/entities"

// IReceiptRenderer lays a receipt request out as a PDF document.
//
//go:generate mockgen -source=receipt_renderer_interface.go -destination=mocks/receipt_renderer_mock.go -package=mock_interfaces
type IReceiptRenderer interface {
	Render(r entities.ReceiptRequest) ([]byte, error)
}
