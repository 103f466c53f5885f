// Package item contains the Item entity, the primary CRUD aggregate of the
// shopping backend.
package item

import (
	"github.com/google/uuid"

	apperrors "shopping-backend/pkg/errors"
	"shopping-backend/pkg/utils"
)

// Item is a catalog entry stored in DynamoDB. The id is generated server-side
// on creation and never changes; createdAt is set once at creation time.
type Item struct {
	ID          string  `json:"id" dynamodbav:"id"`
	Name        string  `json:"name" dynamodbav:"name"`
	Description *string `json:"description" dynamodbav:"description"`
	CreatedAt   string  `json:"createdAt" dynamodbav:"createdAt"`
}

// New creates an Item with a generated id and creation timestamp.
// The name must be non-empty; description may be nil.
func New(name string, description *string) (*Item, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name is a required field")
	}
	return &Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   utils.NowRFC3339(),
	}, nil
}

// Validate checks the invariants that must hold for a stored item.
func (i *Item) Validate() error {
	if i.ID == "" {
		return apperrors.NewValidationError("id is a required field")
	}
	if i.Name == "" {
		return apperrors.NewValidationError("name is a required field")
	}
	return nil
}
