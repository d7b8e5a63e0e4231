package db

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/motifdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() model.Analysis {
	five := model.Note{Degree: 5}
	three := model.Note{Degree: 3}
	return model.Analysis{
		ID:        "a1",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Source:    "test",
		Extraction: model.Extraction{
			Notes: model.Notes{five, three, five, three},
		},
		Matches: []model.PatternMatch[model.Note]{
			{Pattern: []model.Note{five, three}, Occurrences: []int{0, 2}, Count: 2, Length: 2},
		},
		Annotations: []model.Annotation[model.Note]{
			{Symbol: five, Patterns: []int{0}},
			{Symbol: three, Patterns: []int{0}},
			{Symbol: five, Patterns: []int{0}},
			{Symbol: three, Patterns: []int{0}},
		},
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "a1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, sampleAnalysis()))
	got, err := s.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, sampleAnalysis(), *got)
}

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
	err   error
}

func (f *fakeDynamo) PutItemWithContext(ctx aws.Context, in *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items[*in.TableName+"/"+*in.Item["PK"].S] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItemWithContext(ctx aws.Context, in *dynamodb.GetItemInput, opts ...request.Option) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[*in.TableName+"/"+*in.Key["PK"].S]}, nil
}

func TestDynamoStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{items: make(map[string]map[string]*dynamodb.AttributeValue)}
	s := &DynamoStore{client: fake, table: "motifdex"}

	require.NoError(t, s.Put(ctx, sampleAnalysis()))

	item := fake.items["motifdex/a1"]
	require.NotNil(t, item)
	assert.Equal(t, "2024-03-01T12:00:00Z", *item["CreatedAt"].S)
	assert.Equal(t, "4", *item["NumNotes"].N)
	assert.Equal(t, "1", *item["NumMatches"].N)
	assert.Equal(t, "test", *item["Source"].S)
	var body model.Analysis
	require.NoError(t, json.Unmarshal([]byte(*item["Body"].S), &body))
	assert.Equal(t, sampleAnalysis(), body)

	got, err := s.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, sampleAnalysis(), *got)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDynamoStoreWrapsErrors(t *testing.T) {
	boom := errors.New("throttled")
	s := &DynamoStore{client: &fakeDynamo{err: boom}, table: "motifdex"}

	assert.ErrorIs(t, s.Put(context.Background(), sampleAnalysis()), boom)
	_, err := s.Get(context.Background(), "a1")
	assert.ErrorIs(t, err, boom)
}
