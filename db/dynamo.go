package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	"github.com/jsphweid/motifdex/model"
)

// DynamoStore keeps one item per analysis: the ID as PK, a few attributes
// for browsing the table and the full analysis as a JSON Body.
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// NewDynamoStore connects to DynamoDB. An empty endpoint uses the regular
// AWS endpoint for region, otherwise e.g. DynamoDB Local.
func NewDynamoStore(table, region, endpoint string) (*DynamoStore, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("create DynamoDB session: %w", err)
	}
	return &DynamoStore{client: dynamodb.New(sess), table: table}, nil
}

func (s *DynamoStore) Put(ctx context.Context, a model.Analysis) error {
	body, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	item := map[string]*dynamodb.AttributeValue{
		"PK":         {S: aws.String(a.ID)},
		"CreatedAt":  {S: aws.String(a.CreatedAt.UTC().Format(time.RFC3339))},
		"NumNotes":   {N: aws.String(fmt.Sprint(len(a.Extraction.Notes)))},
		"NumMatches": {N: aws.String(fmt.Sprint(len(a.Matches)))},
		"Body":       {S: aws.String(string(body))},
	}
	if a.Source != "" {
		item["Source"] = &dynamodb.AttributeValue{S: aws.String(a.Source)}
	}

	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put analysis %s: %w", a.ID, err)
	}
	return nil
}

func (s *DynamoStore) Get(ctx context.Context, id string) (*model.Analysis, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get analysis %s: %w", id, err)
	}

	body, ok := out.Item["Body"]
	if !ok || body.S == nil {
		return nil, ErrNotFound
	}

	var a model.Analysis
	if err := json.Unmarshal([]byte(*body.S), &a); err != nil {
		return nil, fmt.Errorf("decode analysis %s: %w", id, err)
	}
	return &a, nil
}
