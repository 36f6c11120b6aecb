package interfaces

import (
	"context"
	"portfolio_backend/internal/domain/entities"
)

// IAdminCredentialRepository stores the singleton admin credential.
// Get returns a zero credential when the system is not provisioned.
//
//go:generate mockgen -source=admin_credential_repository_interface.go -destination=mocks/admin_credential_repository_mock.go -package=mock_interfaces
type IAdminCredentialRepository interface {
	Get(ctx context.Context) (entities.AdminCredential, error)
	Save(ctx context.Context, username, passwordHash string) (entities.AdminCredential, error)
}
