package usecase

import (
	"context"
	"strings"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// AdminProvisioningUseCase creates or replaces the singleton admin credential.
// It is driven by the admin CLI, never by the HTTP API.
type AdminProvisioningUseCase struct {
	repo   interfaces.IAdminCredentialRepository
	hasher interfaces.IPasswordHasher
	logger *zap.Logger
}

func NewAdminProvisioningUseCase(repo interfaces.IAdminCredentialRepository, hasher interfaces.IPasswordHasher, logger *zap.Logger) *AdminProvisioningUseCase {
	return &AdminProvisioningUseCase{repo: repo, hasher: hasher, logger: logger.Named("provisioning")}
}

func (u *AdminProvisioningUseCase) Provision(ctx context.Context, username, password string) (entities.AdminCredential, error) {
	username = strings.TrimSpace(username)
	verr := &ValidationError{}
	if username == "" {
		verr.MissingFields = append(verr.MissingFields, "username")
	}
	switch {
	case password == "":
		verr.MissingFields = append(verr.MissingFields, "password")
	case len(password) < MinPasswordLength:
		verr.addInvalid("password")
	}
	if err := verr.orNil(); err != nil {
		return entities.AdminCredential{}, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.AdminCredential{}, err
	}
	cred, err := u.repo.Save(ctx, username, hash)
	if err != nil {
		return entities.AdminCredential{}, err
	}
	u.logger.Info("[admin][usecase] credential saved", zap.String("username", cred.Username))
	return cred, nil
}

// Status returns the current credential, zero when not provisioned.
func (u *AdminProvisioningUseCase) Status(ctx context.Context) (entities.AdminCredential, error) {
	return u.repo.Get(ctx)
}
