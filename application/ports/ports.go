// Package ports defines the interfaces between the application layer and the
// infrastructure adapters. Implementations live under infrastructure/; tests
// substitute in-memory fakes.
package ports

import (
	"context"

	"shopping-backend/domain/item"
)

// ItemRepository wraps the key-value operations against the items table.
// Every method is a single remote call with no local retry.
type ItemRepository interface {
	// CreateItem stores the item unconditionally, overwriting on id collision.
	CreateItem(ctx context.Context, it *item.Item) error

	// GetItem returns the item, or a not-found error when the key is absent.
	GetItem(ctx context.Context, id string) (*item.Item, error)

	// GetAllItems enumerates the full table. No pagination.
	GetAllItems(ctx context.Context) ([]item.Item, error)

	// UpdateItem applies a partial update of the supplied attributes and
	// returns the full post-update record. No existence precondition.
	UpdateItem(ctx context.Context, id string, attributes map[string]interface{}) (*item.Item, error)

	// DeleteItem removes the key unconditionally; absent keys succeed.
	DeleteItem(ctx context.Context, id string) error
}

// NotificationPublisher publishes a change notification to the topic.
// Delivery is fire-and-forget: callers await the publish call itself but
// never downstream consumption.
type NotificationPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// PhotoStore writes photo bytes to object storage and returns the public
// location URL for the stored key.
type PhotoStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
