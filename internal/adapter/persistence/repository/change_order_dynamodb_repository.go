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
	defaultChangeOrdersTableName = "change_orders"
	changeOrdersJobIDIndex       = "job_id-index"
)

type lineItemItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type changeOrderItem struct {
	ID                        string         `dynamodbav:"id"`
	JobID                     string         `dynamodbav:"job_id"`
	MechanicID                string         `dynamodbav:"mechanic_id"`
	CustomerID                string         `dynamodbav:"customer_id"`
	Reason                    string         `dynamodbav:"reason"`
	LineItems                 []lineItemItem `dynamodbav:"line_items"`
	TotalAmount               string         `dynamodbav:"total_amount"`
	Status                    string         `dynamodbav:"status"`
	RequiresImmediateApproval bool           `dynamodbav:"requires_immediate_approval"`
	CreatedAt                 string         `dynamodbav:"created_at"`
	ExpiresAt                 string         `dynamodbav:"expires_at"`
	DecidedAt                 string         `dynamodbav:"decided_at,omitempty"`
}

// ChangeOrderDynamoRepository persists ChangeOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Decisions and expiries are written by the transactional writer with a
// pending-status condition; this repository only creates proposals and reads.
// ListPending scans with a status filter, which is acceptable while pending
// change orders stay a small fraction of the table.
type ChangeOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderDynamoRepository)(nil)

func NewChangeOrderDynamoRepository(ddb *dynamodb.Client) *ChangeOrderDynamoRepository {
	return &ChangeOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ChangeOrderDynamoRepository) Create(ctx context.Context, c entities.ChangeOrder) (entities.ChangeOrder, error) {
	av, err := attributevalue.MarshalMap(toChangeOrderItem(c))
	if err != nil {
		return entities.ChangeOrder{}, err
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
		return entities.ChangeOrder{}, err
	}
	return c, nil
}

func (r *ChangeOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ChangeOrderDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(changeOrdersJobIDIndex),
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
	return unmarshalChangeOrders(out.Items)
}

func (r *ChangeOrderDynamoRepository) ListPending(ctx context.Context) ([]entities.ChangeOrder, error) {
	var orders []entities.ChangeOrder
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.ChangeOrderStatusPending)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		page, err := unmarshalChangeOrders(out.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func unmarshalChangeOrders(items []map[string]types.AttributeValue) ([]entities.ChangeOrder, error) {
	orders := make([]entities.ChangeOrder, 0, len(items))
	for _, item := range items {
		var it changeOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromChangeOrderItem(it))
	}
	return orders, nil
}

func toChangeOrderItem(c entities.ChangeOrder) changeOrderItem {
	it := changeOrderItem{
		ID:                        c.ID,
		JobID:                     c.JobID,
		MechanicID:                c.MechanicID,
		CustomerID:                c.CustomerID,
		Reason:                    c.Reason,
		TotalAmount:               floatToString(c.TotalAmount),
		Status:                    string(c.Status),
		RequiresImmediateApproval: c.RequiresImmediateApproval,
		CreatedAt:                 formatTime(c.CreatedAt),
		ExpiresAt:                 formatTime(c.ExpiresAt),
	}
	if c.DecidedAt != nil {
		it.DecidedAt = formatTime(*c.DecidedAt)
	}
	for _, li := range c.LineItems {
		it.LineItems = append(it.LineItems, lineItemItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   floatToString(li.UnitPrice),
		})
	}
	return it
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrder {
	c := entities.ChangeOrder{
		ID:                        it.ID,
		JobID:                     it.JobID,
		MechanicID:                it.MechanicID,
		CustomerID:                it.CustomerID,
		Reason:                    it.Reason,
		TotalAmount:               stringToFloat(it.TotalAmount),
		Status:                    entities.ChangeOrderStatus(it.Status),
		RequiresImmediateApproval: it.RequiresImmediateApproval,
		CreatedAt:                 parseTime(it.CreatedAt),
		ExpiresAt:                 parseTime(it.ExpiresAt),
	}
	if it.DecidedAt != "" {
		t := parseTime(it.DecidedAt)
		c.DecidedAt = &t
	}
	for _, li := range it.LineItems {
		c.LineItems = append(c.LineItems, entities.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   stringToFloat(li.UnitPrice),
		})
	}
	return c
}
