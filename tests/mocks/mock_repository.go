// Package mocks provides in-memory implementations of the application ports
// for testing services and handlers without real AWS clients.
package mocks

import (
	"context"
	"sync"

	"shopping-backend/domain/item"
	appErrors "shopping-backend/pkg/errors"
)

// MockItemRepository provides an in-memory implementation of
// ports.ItemRepository backed by a map keyed by item id.
type MockItemRepository struct {
	mu    sync.RWMutex
	items map[string]item.Item

	// For testing error scenarios
	shouldFailOn map[string]error
}

// NewMockItemRepository creates a new mock repository instance.
func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		items:        make(map[string]item.Item),
		shouldFailOn: make(map[string]error),
	}
}

// SetError configures the mock to return an error for a specific method.
func (m *MockItemRepository) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// checkError returns an error if one is configured for the given method.
func (m *MockItemRepository) checkError(method string) error {
	if err, exists := m.shouldFailOn[method]; exists {
		return err
	}
	return nil
}

func (m *MockItemRepository) CreateItem(ctx context.Context, it *item.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError("CreateItem"); err != nil {
		return err
	}
	m.items[it.ID] = *it
	return nil
}

func (m *MockItemRepository) GetItem(ctx context.Context, id string) (*item.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError("GetItem"); err != nil {
		return nil, err
	}
	it, ok := m.items[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("item")
	}
	return &it, nil
}

func (m *MockItemRepository) GetAllItems(ctx context.Context) ([]item.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError("GetAllItems"); err != nil {
		return nil, err
	}
	items := make([]item.Item, 0, len(m.items))
	for _, it := range m.items {
		items = append(items, it)
	}
	return items, nil
}

// UpdateItem mirrors the unconditional-update contract: an absent id gets a
// bare record with only the supplied attributes set.
func (m *MockItemRepository) UpdateItem(ctx context.Context, id string, attributes map[string]interface{}) (*item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError("UpdateItem"); err != nil {
		return nil, err
	}

	it := m.items[id]
	it.ID = id
	for attr, value := range attributes {
		switch attr {
		case "name":
			if s, ok := value.(string); ok {
				it.Name = s
			}
		case "description":
			switch v := value.(type) {
			case *string:
				it.Description = v
			case string:
				it.Description = &v
			case nil:
				it.Description = nil
			}
		case "createdAt":
			if s, ok := value.(string); ok {
				it.CreatedAt = s
			}
		}
	}
	m.items[id] = it
	return &it, nil
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError("DeleteItem"); err != nil {
		return err
	}
	delete(m.items, id)
	return nil
}

// Seed stores an item directly, bypassing error configuration.
func (m *MockItemRepository) Seed(it item.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[it.ID] = it
}

// Len returns the number of stored items.
func (m *MockItemRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
