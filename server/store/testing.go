package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Daskott/postbook/server/models"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPIStub is an in-memory DynamoAPI. It understands the expressions
// PostStore sends and nothing more.
type DynamoAPIStub struct {
	PutItemError    error
	UpdateItemError error
	QueryError      error

	mu    sync.Mutex
	calls int
	order []string
	items map[string]map[string]types.AttributeValue
}

func NewDynamoAPIStub() *DynamoAPIStub {
	return &DynamoAPIStub{items: make(map[string]map[string]types.AttributeValue)}
}

// Calls returns how many requests reached the stub.
func (stub *DynamoAPIStub) Calls() int {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return stub.calls
}

// Item returns a copy of the stored item keyed by postID, or nil.
func (stub *DynamoAPIStub) Item(postID string) map[string]types.AttributeValue {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return copyItem(stub.items[postID])
}

func (stub *DynamoAPIStub) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.calls++

	if stub.PutItemError != nil {
		return nil, stub.PutItemError
	}

	key, err := keyOf(params.Item[models.FieldPostID])
	if err != nil {
		return nil, err
	}

	old := stub.items[key]
	stub.store(key, copyItem(params.Item))

	out := &dynamodb.PutItemOutput{}
	if params.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (stub *DynamoAPIStub) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.calls++

	if stub.UpdateItemError != nil {
		return nil, stub.UpdateItemError
	}

	key, err := keyOf(params.Key[models.FieldPostID])
	if err != nil {
		return nil, err
	}

	item := copyItem(stub.items[key])
	if item == nil {
		item = copyItem(params.Key)
	}

	expression := strings.TrimPrefix(*params.UpdateExpression, "SET ")
	for _, assignment := range strings.Split(expression, ", ") {
		name, value, err := resolveAssignment(assignment, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
		if err != nil {
			return nil, err
		}
		item[name] = value
	}
	stub.store(key, item)

	out := &dynamodb.UpdateItemOutput{}
	if params.ReturnValues == types.ReturnValueAllNew {
		out.Attributes = copyItem(item)
	}
	return out, nil
}

func (stub *DynamoAPIStub) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.calls++

	if stub.QueryError != nil {
		return nil, stub.QueryError
	}

	name, want, err := resolveAssignment(*params.KeyConditionExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	out := &dynamodb.QueryOutput{}
	for _, key := range stub.order {
		item := stub.items[key]
		if !sameScalar(item[name], want) {
			continue
		}

		out.Items = append(out.Items, copyItem(item))
		if params.Limit != nil && len(out.Items) >= int(*params.Limit) {
			break
		}
	}
	out.Count = int32(len(out.Items))

	return out, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func (stub *DynamoAPIStub) store(key string, item map[string]types.AttributeValue) {
	if _, ok := stub.items[key]; !ok {
		stub.order = append(stub.order, key)
	}
	stub.items[key] = item
}

// resolveAssignment reads "#name = :value" using the given placeholder maps.
func resolveAssignment(expr string, names map[string]string, values map[string]types.AttributeValue) (string, types.AttributeValue, error) {
	parts := strings.Split(expr, " = ")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("stub: unsupported expression %q", expr)
	}

	name, ok := names[strings.TrimSpace(parts[0])]
	if !ok {
		return "", nil, fmt.Errorf("stub: unbound name placeholder %q", parts[0])
	}

	value, ok := values[strings.TrimSpace(parts[1])]
	if !ok {
		return "", nil, fmt.Errorf("stub: unbound value placeholder %q", parts[1])
	}

	return name, value, nil
}

func keyOf(av types.AttributeValue) (string, error) {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("stub: %s must be a string attribute", models.FieldPostID)
	}
	return s.Value, nil
}

func sameScalar(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	}
	return false
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	if item == nil {
		return nil
	}

	clone := make(map[string]types.AttributeValue, len(item))
	for key, value := range item {
		clone[key] = value
	}
	return clone
}
