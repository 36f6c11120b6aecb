package interfaces

import (
	"context"
	"portfolio_backend/internal/domain/entities"
)

// INotifier tells the admin about new visitor activity.
//
//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces
type INotifier interface {
	NotifyChatMessage(ctx context.Context, m entities.ChatMessage) error
}
