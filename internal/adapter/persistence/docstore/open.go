package docstore

import (
	"context"
	"fmt"

	"portfolio_backend/internal/infrastructure/config"
	"portfolio_backend/internal/infrastructure/database"
	"portfolio_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Open connects the store selected by cfg.Store.Driver and wraps it with
// metrics. The returned close function releases the client.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IDocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.StoreDriverFirestore:
		creds, err := database.ResolveFirebaseCredentials(cfg.Firebase, database.DefaultServiceAccountFiles)
		if err != nil {
			return nil, noop, err
		}
		client, err := database.ConnectFirestore(ctx, creds)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("[store][docstore] connected",
			zap.String("driver", cfg.Store.Driver),
			zap.String("project_id", creds.ProjectID),
			zap.String("credential_source", creds.Source),
		)
		return NewInstrumentedStore(NewFirestoreStore(client), logger), client.Close, nil

	case config.StoreDriverDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("[store][docstore] connected",
			zap.String("driver", cfg.Store.Driver),
			zap.String("region", cfg.DynamoDB.Region),
			zap.String("table_prefix", cfg.DynamoDB.TablePrefix),
		)
		return NewInstrumentedStore(NewDynamoDBStore(client, cfg.DynamoDB.TablePrefix), logger), noop, nil

	case config.StoreDriverMemory:
		logger.Warn("[store][docstore] using in-memory store, data is lost on restart")
		return NewInstrumentedStore(NewMemoryStore(), logger), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
