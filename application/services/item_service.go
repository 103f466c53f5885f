package services

import (
	"context"

	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/domain/events"
	"shopping-backend/domain/item"
)

// ItemService orchestrates the repository and the notification publisher.
// Mutations are strictly sequential: the repository call commits first, then
// the notification is published. A publish failure after a committed mutation
// propagates to the caller without rolling the mutation back.
type ItemService struct {
	repo      ports.ItemRepository
	publisher ports.NotificationPublisher
	logger    *zap.Logger
}

// NewItemService creates a new item service
func NewItemService(
	repo ports.ItemRepository,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Create stores a new item and publishes an ITEM_CREATED notification.
func (s *ItemService) Create(ctx context.Context, name string, description *string) (*item.Item, error) {
	it, err := item.New(name, description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.ItemCreated, it); err != nil {
		// The item is already durably stored; the caller still sees the
		// failure (no compensating delete).
		s.logger.Error("Item stored but notification publish failed",
			zap.String("itemID", it.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Item created",
		zap.String("itemID", it.ID),
		zap.String("name", it.Name),
	)
	return it, nil
}

// Get returns the item for id, or a not-found error.
func (s *ItemService) Get(ctx context.Context, id string) (*item.Item, error) {
	return s.repo.GetItem(ctx, id)
}

// List returns every item in the table.
func (s *ItemService) List(ctx context.Context) ([]item.Item, error) {
	return s.repo.GetAllItems(ctx)
}

// Update applies a partial update and publishes ITEM_UPDATED with the full
// post-update record.
func (s *ItemService) Update(ctx context.Context, id string, attributes map[string]interface{}) (*item.Item, error) {
	updated, err := s.repo.UpdateItem(ctx, id, attributes)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.ItemUpdated, updated); err != nil {
		s.logger.Error("Item updated but notification publish failed",
			zap.String("itemID", id),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Item updated", zap.String("itemID", id))
	return updated, nil
}

// Delete removes the item unconditionally and publishes ITEM_DELETED with the
// id. Deleting an absent id succeeds.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, events.ItemDeleted, map[string]string{"id": id}); err != nil {
		s.logger.Error("Item deleted but notification publish failed",
			zap.String("itemID", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Item deleted", zap.String("itemID", id))
	return nil
}
