// internal/infrastructure/database/firestore/connection.go
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/your-org/storefront-backend/internal/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client wraps the Firestore client
type Client struct {
	Firestore *firestore.Client
}

// NewConnection creates a new Firestore connection
func NewConnection(ctx context.Context, cfg *config.Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Firestore: %w", err)
	}

	return &Client{
		Firestore: client,
	}, nil
}

// Close closes the Firestore connection
func (c *Client) Close() error {
	return c.Firestore.Close()
}

// GetClient returns the Firestore client instance
func (c *Client) GetClient() *firestore.Client {
	return c.Firestore
}

// Health checks the Firestore connection health with a lightweight read
func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	iter := c.Firestore.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("firestore health check failed: %w", err)
	}
	return nil
}
