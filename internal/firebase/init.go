package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"io.myazahq.khalidlifestyle/internal/config"
)

// InitFirebase initializes and returns a Firebase app instance
func InitFirebase(cfg config.Firebase) (*firebase.App, error) {
	ctx := context.Background()

	var app *firebase.App
	var err error

	if cfg.ServiceAccountPath != "" {
		// Initialize with service account file
		opt := option.WithCredentialsFile(cfg.ServiceAccountPath)
		config := &firebase.Config{
			ProjectID: cfg.ProjectID,
		}
		app, err = firebase.NewApp(ctx, config, opt)
	} else {
		// Initialize with default credentials (useful for Google Cloud deployment)
		config := &firebase.Config{
			ProjectID: cfg.ProjectID,
		}
		app, err = firebase.NewApp(ctx, config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	return app, nil
}

// GetFirestoreClient returns a Firestore client from the app
func GetFirestoreClient(app *firebase.App) (*firestore.Client, error) {
	ctx := context.Background()

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return client, nil
}
