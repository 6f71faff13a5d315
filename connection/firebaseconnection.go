package connection

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

func FBConnection(ctx context.Context, serviceAccountKeyPath string) (*firestore.Client, error) {
	if serviceAccountKeyPath == "" {
		return nil, fmt.Errorf("firestore service account key path is empty")
	}

	// Initialize Firebase app with Firestore
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountKeyPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	log.Info("Firestore connection successful")
	return client, nil
}
