package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/adapter/persistence/repository"
	"portfolio_backend/internal/infrastructure/auth"
	"portfolio_backend/internal/infrastructure/config"
	"portfolio_backend/internal/infrastructure/logger"
	"portfolio_backend/internal/usecase"
	"portfolio_backend/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

// storeOpener returns the document store the commands work against.
type storeOpener func(ctx context.Context, log *zap.Logger) (interfaces.IDocumentStore, func() error, error)

func main() {
	if err := newRootCmd(openConfiguredStore, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(open storeOpener, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "admin",
		Short:         "Manage the portfolio backend admin credential",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(initCmd(open))
	rootCmd.AddCommand(statusCmd(open))
	return rootCmd
}

func initCmd(open storeOpener) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or replace the admin credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvisioning(cmd.Context(), open, func(uc *usecase.AdminProvisioningUseCase) error {
				cred, err := uc.Provision(cmd.Context(), username, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Admin credential saved for %q\n", cred.Username)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "Admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", fmt.Sprintf("Admin password (at least %d characters)", usecase.MinPasswordLength))
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func statusCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the admin credential is provisioned",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvisioning(cmd.Context(), open, func(uc *usecase.AdminProvisioningUseCase) error {
				cred, err := uc.Status(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if cred.ID == "" {
					fmt.Fprintln(w, "Admin: not provisioned (run `admin init --password ...`)")
					return nil
				}
				fmt.Fprintf(w, "Admin: provisioned\n  Username: %s\n", cred.Username)
				if !cred.UpdatedAt.IsZero() {
					fmt.Fprintf(w, "  Updated:  %s\n", cred.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
				}
				return nil
			})
		},
	}
}

func withProvisioning(ctx context.Context, open storeOpener, fn func(*usecase.AdminProvisioningUseCase) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.New(logger.Config{Level: os.Getenv("LOG_LEVEL"), Format: "console", Output: "stderr"})
	defer func() { _ = log.Sync() }()

	store, closeStore, err := open(ctx, log)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	uc := usecase.NewAdminProvisioningUseCase(
		repository.NewAdminCredentialRepository(store),
		auth.NewBcryptHasher(auth.DefaultBcryptCost),
		log,
	)
	return fn(uc)
}

func openConfiguredStore(ctx context.Context, log *zap.Logger) (interfaces.IDocumentStore, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return docstore.Open(ctx, cfg, log)
}
