package services

import (
	"context"

	"joinus_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/mock"
)

// mockStore is a testify double for the DocumentStore interface
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, key)
	if item := args.Get(0); item != nil {
		return item.(map[string]types.AttributeValue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) PutItem(ctx context.Context, tableName string, item interface{}) error {
	args := m.Called(ctx, tableName, item)
	return args.Error(0)
}

func (m *mockStore) UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if item := args.Get(0); item != nil {
		return item.(map[string]types.AttributeValue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	args := m.Called(ctx, tableName, key)
	return args.Error(0)
}

func (m *mockStore) QueryItemsWithIndex(ctx context.Context, tableName string, indexName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) ([]map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, indexName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames)
	if items := args.Get(0); items != nil {
		return items.([]map[string]types.AttributeValue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) QueryItemsWithOptions(ctx context.Context, tableName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit, latestFirst)
	if items := args.Get(0); items != nil {
		return items.([]map[string]types.AttributeValue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) ScanAll(ctx context.Context, tableName string) ([]map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName)
	if items := args.Get(0); items != nil {
		return items.([]map[string]types.AttributeValue), args.Error(1)
	}
	return nil, args.Error(1)
}

// marshalItem converts a model into a stored attribute map, failing loudly on
// a malformed fixture.
func marshalItem(v interface{}) map[string]types.AttributeValue {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		panic(err)
	}
	return item
}

func marshalItems(vs ...interface{}) []map[string]types.AttributeValue {
	items := make([]map[string]types.AttributeValue, len(vs))
	for i, v := range vs {
		items[i] = marshalItem(v)
	}
	return items
}

func chatItem(eventID, guestID, status string) map[string]types.AttributeValue {
	return marshalItem(models.Chat{
		ChatID:  eventID + "-" + guestID,
		EventID: eventID,
		GuestID: guestID,
		Status:  status,
	})
}
