package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"portfolio_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoDBAPI is the subset of *dynamodb.Client the store calls.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoDBStore maps every collection to its own table.
//
// Table requirements:
//   - name: <prefix><collection>, e.g. portfolio_contacts
//   - PK: id (string)
//
// List and Query scan the whole table; collections here stay small.
type DynamoDBStore struct {
	ddb         DynamoDBAPI
	tablePrefix string
	now         func() time.Time
	newID       func() string
}

var _ interfaces.IDocumentStore = (*DynamoDBStore)(nil)

func NewDynamoDBStore(ddb DynamoDBAPI, tablePrefix string) *DynamoDBStore {
	return &DynamoDBStore{
		ddb:         ddb,
		tablePrefix: tablePrefix,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *DynamoDBStore) table(collection string) *string {
	return aws.String(s.tablePrefix + collection)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		interfaces.FieldID: &types.AttributeValueMemberS{Value: id},
	}
}

func (s *DynamoDBStore) Create(ctx context.Context, collection string, doc interfaces.Document) (interfaces.Document, error) {
	stored := cloneDocument(doc)
	stored[interfaces.FieldID] = s.newID()
	stored[interfaces.FieldCreatedAt] = FormatTimestamp(s.now())

	av, err := attributevalue.MarshalMap(map[string]any(stored))
	if err != nil {
		return nil, fmt.Errorf("marshal %s document: %w", collection, err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           s.table(collection),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": interfaces.FieldID,
		},
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *DynamoDBStore) Get(ctx context.Context, collection, id string) (interfaces.Document, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      s.table(collection),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, interfaces.ErrDocumentNotFound
	}
	return unmarshalDocument(out.Item)
}

func (s *DynamoDBStore) List(ctx context.Context, collection, orderBy string, dir interfaces.SortDirection) ([]interfaces.Document, error) {
	docs, err := s.scan(ctx, &dynamodb.ScanInput{TableName: s.table(collection)})
	if err != nil {
		return nil, err
	}
	if orderBy != "" {
		sortDocuments(docs, orderBy, dir)
	}
	return docs, nil
}

func (s *DynamoDBStore) Query(ctx context.Context, collection, field string, value any) ([]interfaces.Document, error) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal query value: %w", err)
	}
	return s.scan(ctx, &dynamodb.ScanInput{
		TableName:                 s.table(collection),
		FilterExpression:          aws.String("#f = :v"),
		ExpressionAttributeNames:  map[string]string{"#f": field},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": av},
	})
}

func (s *DynamoDBStore) scan(ctx context.Context, input *dynamodb.ScanInput) ([]interfaces.Document, error) {
	var docs []interfaces.Document
	p := dynamodb.NewScanPaginator(s.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			doc, err := unmarshalDocument(item)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *DynamoDBStore) Update(ctx context.Context, collection, id string, fields interfaces.Document) error {
	updateExpr, values, names, err := buildSetExpression(fields)
	if err != nil {
		return err
	}
	if updateExpr == "" {
		// Nothing to write; still report a missing document.
		_, err := s.Get(ctx, collection, id)
		return err
	}

	_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 s.table(collection),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": interfaces.FieldID}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: s.table(collection),
		Key:       idKey(id),
	})
	return err
}

// BatchUpdate issues one conditional UpdateItem per id. DynamoDB transactions
// cap at 100 items, so a session can outgrow them; failures are collected.
func (s *DynamoDBStore) BatchUpdate(ctx context.Context, collection string, ids []string, fields interfaces.Document) error {
	failed := make(map[string]error)
	for _, id := range ids {
		if err := s.Update(ctx, collection, id, fields); err != nil {
			failed[id] = err
		}
	}
	if len(failed) > 0 {
		return &interfaces.BatchUpdateError{Collection: collection, Failed: failed}
	}
	return nil
}

// buildSetExpression renders fields as "SET #f0 = :v0, ..." in key order.
func buildSetExpression(fields interfaces.Document) (string, map[string]types.AttributeValue, map[string]string, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == interfaces.FieldID || k == interfaces.FieldCreatedAt {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", nil, nil, nil
	}
	sort.Strings(keys)

	values := make(map[string]types.AttributeValue, len(keys))
	names := make(map[string]string, len(keys))
	expr := "SET "
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal field %s: %w", k, err)
		}
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":v%d", i)
		names[name] = k
		values[value] = av
		if i > 0 {
			expr += ", "
		}
		expr += name + " = " + value
	}
	return expr, values, names, nil
}

func unmarshalDocument(item map[string]types.AttributeValue) (interfaces.Document, error) {
	doc := make(map[string]any, len(item))
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, err
	}
	return interfaces.Document(doc), nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
