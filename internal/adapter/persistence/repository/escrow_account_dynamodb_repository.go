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
	defaultEscrowTableName = "escrow_accounts"
	escrowJobIDIndex       = "job_id-index"
)

type escrowAccountItem struct {
	ID                string   `dynamodbav:"id"`
	JobID             string   `dynamodbav:"job_id"`
	CustomerID        string   `dynamodbav:"customer_id"`
	MechanicID        string   `dynamodbav:"mechanic_id"`
	Amount            string   `dynamodbav:"amount"`
	Currency          string   `dynamodbav:"currency"`
	Status            string   `dynamodbav:"status"`
	HoldRef           string   `dynamodbav:"hold_ref,omitempty"`
	ReleaseConditions []string `dynamodbav:"release_conditions,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
	ReleasedAt        string   `dynamodbav:"released_at,omitempty"`
	RefundedAt        string   `dynamodbav:"refunded_at,omitempty"`
}

// EscrowDynamoRepository reads EscrowAccount entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// All writes to escrow accounts happen inside the transactional writer; a
// held account only ever comes into existence together with its accepted bid
// and only leaves the held state together with its payment row.
type EscrowDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEscrowRepository = (*EscrowDynamoRepository)(nil)

func NewEscrowDynamoRepository(ddb *dynamodb.Client) *EscrowDynamoRepository {
	return &EscrowDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESCROW_TABLE", defaultEscrowTableName),
	}
}

func (r *EscrowDynamoRepository) GetByID(ctx context.Context, id string) (entities.EscrowAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EscrowAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.EscrowAccount{}, nil
	}

	var it escrowAccountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EscrowAccount{}, err
	}
	return fromEscrowItem(it), nil
}

func (r *EscrowDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.EscrowAccount, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(escrowJobIDIndex),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.EscrowAccount{}, err
	}
	if len(out.Items) == 0 {
		return entities.EscrowAccount{}, nil
	}

	var it escrowAccountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.EscrowAccount{}, err
	}
	return fromEscrowItem(it), nil
}

func toEscrowItem(e entities.EscrowAccount) escrowAccountItem {
	it := escrowAccountItem{
		ID:                e.ID,
		JobID:             e.JobID,
		CustomerID:        e.CustomerID,
		MechanicID:        e.MechanicID,
		Amount:            floatToString(e.Amount),
		Currency:          e.Currency,
		Status:            string(e.Status),
		HoldRef:           e.HoldRef,
		ReleaseConditions: e.ReleaseConditions,
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
	if e.ReleasedAt != nil {
		it.ReleasedAt = formatTime(*e.ReleasedAt)
	}
	if e.RefundedAt != nil {
		it.RefundedAt = formatTime(*e.RefundedAt)
	}
	return it
}

func fromEscrowItem(it escrowAccountItem) entities.EscrowAccount {
	e := entities.EscrowAccount{
		ID:                it.ID,
		JobID:             it.JobID,
		CustomerID:        it.CustomerID,
		MechanicID:        it.MechanicID,
		Amount:            stringToFloat(it.Amount),
		Currency:          it.Currency,
		Status:            entities.EscrowStatus(it.Status),
		HoldRef:           it.HoldRef,
		ReleaseConditions: it.ReleaseConditions,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.ReleasedAt != "" {
		t := parseTime(it.ReleasedAt)
		e.ReleasedAt = &t
	}
	if it.RefundedAt != "" {
		t := parseTime(it.RefundedAt)
		e.RefundedAt = &t
	}
	return e
}
