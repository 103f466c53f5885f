package mocks

import (
	"context"
	"sync"
)

// PublishedEvent records one call to the mock publisher.
type PublishedEvent struct {
	EventType string
	Data      interface{}
}

// MockPublisher records published notifications in memory.
type MockPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent

	// Err, when set, is returned from every Publish call.
	Err error
}

// NewMockPublisher creates a new mock publisher instance.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.events = append(m.events, PublishedEvent{EventType: eventType, Data: data})
	return nil
}

// Events returns a copy of the recorded events.
func (m *MockPublisher) Events() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}

// MockPhotoStore records uploads and returns a deterministic URL.
type MockPhotoStore struct {
	mu      sync.Mutex
	uploads map[string][]byte

	// Err, when set, is returned from every Upload call.
	Err error
}

// NewMockPhotoStore creates a new mock photo store instance.
func NewMockPhotoStore() *MockPhotoStore {
	return &MockPhotoStore{uploads: make(map[string][]byte)}
}

func (m *MockPhotoStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.uploads[key] = data
	return "https://shopping-images.s3.amazonaws.com/" + key, nil
}

// Stored returns the bytes uploaded under key.
func (m *MockPhotoStore) Stored(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.uploads[key]
	return data, ok
}
