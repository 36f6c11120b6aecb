package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"portfolio_backend/internal/infrastructure/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Default service account files, checked in order after FIREBASE_SERVICE_ACCOUNT_PATH.
var DefaultServiceAccountFiles = []string{
	"firebase-service-account.json",
	"service-account-key.json",
}

var ErrNoFirebaseCredentials = errors.New(
	"no Firebase credentials: provide a service account file (FIREBASE_SERVICE_ACCOUNT_PATH) " +
		"or set FIREBASE_PROJECT_ID, FIREBASE_PRIVATE_KEY and FIREBASE_CLIENT_EMAIL")

const (
	CredentialSourceFile   = "file"
	CredentialSourceFields = "fields"
)

// FirebaseCredentials is a resolved service account.
type FirebaseCredentials struct {
	Source    string
	Location  string
	ProjectID string
	JSON      []byte
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// ResolveFirebaseCredentials tries each service account file in order, then
// the individual environment fields. The first usable source wins.
func ResolveFirebaseCredentials(cfg config.FirebaseConfig, files []string) (FirebaseCredentials, error) {
	candidates := make([]string, 0, len(files)+1)
	if cfg.ServiceAccountPath != "" {
		candidates = append(candidates, cfg.ServiceAccountPath)
	}
	candidates = append(candidates, files...)

	for _, path := range candidates {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var sa serviceAccount
		if err := json.Unmarshal(raw, &sa); err != nil || sa.ProjectID == "" {
			continue
		}
		return FirebaseCredentials{Source: CredentialSourceFile, Location: path, ProjectID: sa.ProjectID, JSON: raw}, nil
	}

	if cfg.ProjectID != "" && cfg.PrivateKey != "" && cfg.ClientEmail != "" {
		raw, err := json.Marshal(serviceAccount{
			Type:        "service_account",
			ProjectID:   cfg.ProjectID,
			PrivateKey:  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
			ClientEmail: cfg.ClientEmail,
			TokenURI:    "https://oauth2.googleapis.com/token",
		})
		if err != nil {
			return FirebaseCredentials{}, err
		}
		return FirebaseCredentials{Source: CredentialSourceFields, Location: "environment", ProjectID: cfg.ProjectID, JSON: raw}, nil
	}

	return FirebaseCredentials{}, ErrNoFirebaseCredentials
}

// ConnectFirestore initializes the Firebase app and returns its Firestore client.
func ConnectFirestore(ctx context.Context, creds FirebaseCredentials) (*firestore.Client, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: creds.ProjectID}, option.WithCredentialsJSON(creds.JSON))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}
	return client, nil
}
