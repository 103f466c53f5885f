// Package dynamodb implements the item repository against a single DynamoDB
// table keyed by the item id.
package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/domain/item"
	apperrors "shopping-backend/pkg/errors"
)

// ItemRepository implements ports.ItemRepository using DynamoDB
type ItemRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ItemRepository {
	return &ItemRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// CreateItem stores the item with an unconditional PutItem. An id collision
// overwrites the existing record; ids are random uuids so collisions are
// treated as negligible.
func (r *ItemRepository) CreateItem(ctx context.Context, it *item.Item) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal item").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to put item",
			zap.Error(err),
			zap.String("itemID", it.ID),
		)
		return apperrors.NewDatabaseError("put", err)
	}

	return nil
}

// GetItem fetches the item by id. A missing key is reported as a not-found
// error, never as a backend fault.
func (r *ItemRepository) GetItem(ctx context.Context, id string) (*item.Item, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(id),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to get item",
			zap.Error(err),
			zap.String("itemID", id),
		)
		return nil, apperrors.NewDatabaseError("get", err)
	}

	if len(result.Item) == 0 {
		return nil, apperrors.NewNotFoundError("item")
	}

	var it item.Item
	if err := attributevalue.UnmarshalMap(result.Item, &it); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal item").WithCause(err)
	}

	return &it, nil
}

// GetAllItems enumerates the whole table with a single Scan. There is no
// pagination; callers accept unbounded result size.
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]item.Item, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	result, err := r.client.Scan(ctx, input)
	if err != nil {
		r.logger.Error("Failed to scan items table", zap.Error(err))
		return nil, apperrors.NewDatabaseError("scan", err)
	}

	items := make([]item.Item, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal items").WithCause(err)
	}

	return items, nil
}

// UpdateItem sets exactly the supplied attributes and returns the full
// post-update record (ReturnValues ALL_NEW). There is no existence
// precondition: updating an absent id creates a bare record, matching the
// unconditional-update contract.
func (r *ItemRepository) UpdateItem(ctx context.Context, id string, attributes map[string]interface{}) (*item.Item, error) {
	if len(attributes) == 0 {
		return nil, apperrors.NewValidationError("no attributes to update")
	}

	expr, err := buildUpdateExpression(attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       itemKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	}

	result, err := r.client.UpdateItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to update item",
			zap.Error(err),
			zap.String("itemID", id),
		)
		return nil, apperrors.NewDatabaseError("update", err)
	}

	var it item.Item
	if err := attributevalue.UnmarshalMap(result.Attributes, &it); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal updated item").WithCause(err)
	}

	return &it, nil
}

// DeleteItem removes the key unconditionally. Deleting an id that was never
// stored still succeeds; no existence verification is performed.
func (r *ItemRepository) DeleteItem(ctx context.Context, id string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(id),
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		r.logger.Error("Failed to delete item",
			zap.Error(err),
			zap.String("itemID", id),
		)
		return apperrors.NewDatabaseError("delete", err)
	}

	return nil
}

// itemKey builds the primary key attribute map for id
func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// buildUpdateExpression translates an attribute map into a SET expression,
// one clause per supplied attribute. The id key is never settable. Any other
// attribute name is accepted, preserving the permissive update contract.
func buildUpdateExpression(attributes map[string]interface{}) (expression.Expression, error) {
	var update expression.UpdateBuilder
	for attr, value := range attributes {
		if attr == "id" {
			return expression.Expression{}, apperrors.NewValidationError("id is immutable")
		}
		update = update.Set(expression.Name(attr), expression.Value(value))
	}

	return expression.NewBuilder().
		WithUpdate(update).
		Build()
}
