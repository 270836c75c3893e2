package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient connects to Firestore. On Cloud Run default credentials
// apply; elsewhere the configured service account key file is used when it
// exists. All environment resolution happens in the config package.
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string, cloudRun bool) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	if cloudRun {
		logrus.Info("☁️ Cloud Run environment: using default authentication")
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client with default auth: %w", err)
		}
		logrus.Infof("✅ Firestore client initialized for project: %s (Cloud Run default auth)", projectID)
	} else {
		if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			logrus.Warnf("⚠️ Credentials file not found: %s, trying with default authentication", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			logrus.Infof("📄 Using credentials file: %s", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		logrus.Infof("✅ Firestore client initialized for project: %s", projectID)
	}

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
