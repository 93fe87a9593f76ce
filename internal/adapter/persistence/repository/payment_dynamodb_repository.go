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
	defaultPaymentsTableName = "payments"
	paymentsJobIDIndex       = "job_id-index"
)

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	JobID           string `dynamodbav:"job_id"`
	EscrowAccountID string `dynamodbav:"escrow_account_id"`
	GrossAmount     string `dynamodbav:"gross_amount"`
	PlatformFee     string `dynamodbav:"platform_fee"`
	MechanicAmount  string `dynamodbav:"mechanic_amount"`
	ServiceCategory string `dynamodbav:"service_category"`
	Status          string `dynamodbav:"status"`
	RefundReason    string `dynamodbav:"refund_reason,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository reads Payment entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Payments are written only by the transactional writer so the commission
// split always lands in the same transaction as its escrow state change.
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsJobIDIndex),
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
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:              p.ID,
		JobID:           p.JobID,
		EscrowAccountID: p.EscrowAccountID,
		GrossAmount:     floatToString(p.GrossAmount),
		PlatformFee:     floatToString(p.PlatformFee),
		MechanicAmount:  floatToString(p.MechanicAmount),
		ServiceCategory: p.ServiceCategory,
		Status:          string(p.Status),
		RefundReason:    p.RefundReason,
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:              it.ID,
		JobID:           it.JobID,
		EscrowAccountID: it.EscrowAccountID,
		GrossAmount:     stringToFloat(it.GrossAmount),
		PlatformFee:     stringToFloat(it.PlatformFee),
		MechanicAmount:  stringToFloat(it.MechanicAmount),
		ServiceCategory: it.ServiceCategory,
		Status:          entities.PaymentStatus(it.Status),
		RefundReason:    it.RefundReason,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
