package docstore

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/elesfuerzo/pos-api/internal/config"
)

// Store owns the Firestore and Firebase Auth clients.
type Store struct {
	Firestore  *firestore.Client
	AuthClient *fbauth.Client
}

// Connect initializes the Firestore client and the Firebase Admin SDK against
// the configured project. A credentials file is optional; without one the
// clients use Application Default Credentials.
func Connect(ctx context.Context, cfg config.FirestoreConfig) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	fsClient, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("docstore: firestore client (project=%s): %w", cfg.ProjectID, err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("docstore: firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("docstore: firebase auth client: %w", err)
	}

	log.Printf("docstore: connected to project %s", cfg.ProjectID)
	return &Store{Firestore: fsClient, AuthClient: authClient}, nil
}

// Close releases the Firestore connection.
func (s *Store) Close() error {
	if s == nil || s.Firestore == nil {
		return nil
	}
	return s.Firestore.Close()
}
