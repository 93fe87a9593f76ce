package repository

import (
	"context"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBidsTableName = "bids"
	bidsJobIDIndex       = "job_id-index"
)

type bidItem struct {
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	MechanicID     string `dynamodbav:"mechanic_id"`
	Amount         string `dynamodbav:"amount"`
	Kind           string `dynamodbav:"kind"`
	EstimatedHours string `dynamodbav:"estimated_hours,omitempty"`
	Message        string `dynamodbav:"message,omitempty"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// BidDynamoRepository persists Bid entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Bid decisions (accept/reject) are written by the transactional writer, not
// here, so acceptance stays atomic with the job flip and the escrow hold.
type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb *dynamodb.Client) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *BidDynamoRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	av, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return entities.Bid{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *BidDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bidsJobIDIndex),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	bids := make([]entities.Bid, 0, len(out.Items))
	for _, item := range out.Items {
		var it bidItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		bids = append(bids, fromBidItem(it))
	}
	return bids, nil
}

func toBidItem(b entities.Bid) bidItem {
	it := bidItem{
		ID:         b.ID,
		JobID:      b.JobID,
		MechanicID: b.MechanicID,
		Amount:     floatToString(b.Amount),
		Kind:       string(b.Kind),
		Message:    b.Message,
		Status:     string(b.Status),
		CreatedAt:  formatTime(b.CreatedAt),
	}
	if b.EstimatedHours > 0 {
		it.EstimatedHours = floatToString(b.EstimatedHours)
	}
	return it
}

func fromBidItem(it bidItem) entities.Bid {
	b := entities.Bid{
		ID:         it.ID,
		JobID:      it.JobID,
		MechanicID: it.MechanicID,
		Amount:     stringToFloat(it.Amount),
		Kind:       entities.BidKind(it.Kind),
		Message:    it.Message,
		Status:     entities.BidStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
	}
	if it.EstimatedHours != "" {
		b.EstimatedHours = stringToFloat(it.EstimatedHours)
	}
	return b
}
