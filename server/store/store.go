package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Daskott/postbook/server/errs"
	"github.com/Daskott/postbook/server/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DEFAULT_EMAIL_INDEX = "personal-email-index"

	msgNoFieldsProvided = "No fields provided."
)

// WriteResult is what a put or update reports back to the client.
type WriteResult struct {
	Attributes       models.Post             `json:"Attributes,omitempty"`
	ConsumedCapacity *types.ConsumedCapacity `json:"ConsumedCapacity,omitempty"`
}

// PostStore reads and writes posts in a single DynamoDB table keyed by postId,
// with a secondary index on personal email for reads.
type PostStore struct {
	api        DynamoAPI
	tableName  string
	emailIndex string
}

func NewPostStore(api DynamoAPI, tableName, emailIndex string) (*PostStore, error) {
	if api == nil {
		return nil, fmt.Errorf("NewPostStore: a DynamoDB client is required")
	}

	if tableName == "" {
		return nil, fmt.Errorf("NewPostStore: a table name is required")
	}

	if emailIndex == "" {
		emailIndex = DEFAULT_EMAIL_INDEX
	}

	return &PostStore{api: api, tableName: tableName, emailIndex: emailIndex}, nil
}

func (s *PostStore) TableName() string {
	return s.tableName
}

// Put writes post as-is, replacing any item with the same postId. The
// replaced item, if any, is returned in the result.
func (s *PostStore) Put(ctx context.Context, post models.Post) (*WriteResult, error) {
	item, err := marshalPost(post)
	if err != nil {
		return nil, errs.NewStorageError("PutItem", err)
	}

	out, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:              aws.String(s.tableName),
		Item:                   item,
		ReturnValues:           types.ReturnValueAllOld,
		ReturnConsumedCapacity: types.ReturnConsumedCapacityTotal,
	})
	if err != nil {
		return nil, errs.NewStorageError("PutItem", err)
	}

	return newWriteResult("PutItem", out.Attributes, out.ConsumedCapacity)
}

// Update applies update to the item whose postId is postID in one request.
// The item as it stands afterwards is returned in the result.
func (s *PostStore) Update(ctx context.Context, postID string, update *Update) (*WriteResult, error) {
	out, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			models.FieldPostID: &types.AttributeValueMemberS{Value: postID},
		},
		UpdateExpression:          aws.String(update.Expression),
		ExpressionAttributeNames:  update.Names,
		ExpressionAttributeValues: update.Values,
		ReturnValues:              types.ReturnValueAllNew,
		ReturnConsumedCapacity:    types.ReturnConsumedCapacityTotal,
	})
	if err != nil {
		return nil, errs.NewStorageError("UpdateItem", err)
	}

	return newWriteResult("UpdateItem", out.Attributes, out.ConsumedCapacity)
}

// FindByEmail returns the first post indexed under email.
func (s *PostStore) FindByEmail(ctx context.Context, email string) (models.Post, error) {
	out, err := s.api.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(s.emailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": models.FieldPersonalEmail,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, errs.NewStorageError("Query", err)
	}

	if len(out.Items) == 0 {
		return nil, errs.NewNotFoundError(models.FieldPersonalEmail, email)
	}

	post, err := unmarshalPost(out.Items[0])
	if err != nil {
		return nil, errs.NewStorageError("Query", err)
	}

	return post, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func newWriteResult(op string, attributes map[string]types.AttributeValue, capacity *types.ConsumedCapacity) (*WriteResult, error) {
	result := &WriteResult{ConsumedCapacity: capacity}
	if len(attributes) == 0 {
		return result, nil
	}

	post, err := unmarshalPost(attributes)
	if err != nil {
		return nil, errs.NewStorageError(op, err)
	}
	result.Attributes = post

	return result, nil
}

func marshalPost(post models.Post) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(post))
	for key, value := range post {
		av, err := toAttributeValue(value)
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %v", key, err)
		}
		item[key] = av
	}
	return item, nil
}

func unmarshalPost(item map[string]types.AttributeValue) (models.Post, error) {
	post := models.Post{}
	if err := attributevalue.UnmarshalMap(item, &post); err != nil {
		return nil, err
	}
	return post, nil
}

// toAttributeValue keeps JSON numbers as DynamoDB numbers with their exact
// source text; everything else goes through the SDK marshaler.
func toAttributeValue(value interface{}) (types.AttributeValue, error) {
	if number, ok := value.(json.Number); ok {
		return &types.AttributeValueMemberN{Value: number.String()}, nil
	}
	return attributevalue.Marshal(value)
}
