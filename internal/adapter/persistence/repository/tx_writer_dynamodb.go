package repository

import (
	"context"
	"errors"
	"fmt"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoTxWriter commits the workflow's multi-entity writes with
// TransactWriteItems. Each transaction pins its precondition state via
// condition expressions: when a condition fails the whole transaction is
// cancelled and the caller gets interfaces.ErrTxConflict to re-read and
// re-decide.
type DynamoTxWriter struct {
	ddb               *dynamodb.Client
	jobsTable         string
	bidsTable         string
	escrowTable       string
	paymentsTable     string
	changeOrdersTable string
}

var _ interfaces.ITxWriter = (*DynamoTxWriter)(nil)

func NewDynamoTxWriter(ddb *dynamodb.Client) *DynamoTxWriter {
	return &DynamoTxWriter{
		ddb:               ddb,
		jobsTable:         getenvDefault("JOBS_TABLE", defaultJobsTableName),
		bidsTable:         getenvDefault("BIDS_TABLE", defaultBidsTableName),
		escrowTable:       getenvDefault("ESCROW_TABLE", defaultEscrowTableName),
		paymentsTable:     getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		changeOrdersTable: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (w *DynamoTxWriter) CommitBidAcceptance(ctx context.Context, job entities.Job, accepted entities.Bid, rejected []entities.Bid, escrow entities.EscrowAccount, payment entities.Payment) error {
	items := make([]types.TransactWriteItem, 0, len(rejected)+4)

	// The job must still be open for bidding and unassigned.
	jobPut, err := w.putItem(w.jobsTable, toJobItem(job))
	if err != nil {
		return err
	}
	jobPut.Put.ConditionExpression = aws.String("#status IN (:posted, :bidding) AND attribute_not_exists(#amid)")
	jobPut.Put.ExpressionAttributeNames = map[string]string{
		"#status": "status",
		"#amid":   "assigned_mechanic_id",
	}
	jobPut.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":posted":  &types.AttributeValueMemberS{Value: string(entities.JobStatusPosted)},
		":bidding": &types.AttributeValueMemberS{Value: string(entities.JobStatusBidding)},
	}
	items = append(items, jobPut)

	winPut, err := w.putPendingBid(accepted)
	if err != nil {
		return err
	}
	items = append(items, winPut)

	for _, b := range rejected {
		p, err := w.putPendingBid(b)
		if err != nil {
			return err
		}
		items = append(items, p)
	}

	escrowPut, err := w.putItem(w.escrowTable, toEscrowItem(escrow))
	if err != nil {
		return err
	}
	escrowPut.Put.ConditionExpression = aws.String("attribute_not_exists(#id)")
	escrowPut.Put.ExpressionAttributeNames = map[string]string{"#id": "id"}
	items = append(items, escrowPut)

	paymentPut, err := w.putItem(w.paymentsTable, toPaymentItem(payment))
	if err != nil {
		return err
	}
	paymentPut.Put.ConditionExpression = aws.String("attribute_not_exists(#id)")
	paymentPut.Put.ExpressionAttributeNames = map[string]string{"#id": "id"}
	items = append(items, paymentPut)

	return w.commit(ctx, items)
}

func (w *DynamoTxWriter) CommitBidRejection(ctx context.Context, b entities.Bid) error {
	put, err := w.putPendingBid(b)
	if err != nil {
		return err
	}
	return w.commit(ctx, []types.TransactWriteItem{put})
}

func (w *DynamoTxWriter) CommitChangeOrderDecision(ctx context.Context, c entities.ChangeOrder) error {
	put, err := w.putPendingChangeOrder(c)
	if err != nil {
		return err
	}
	return w.commit(ctx, []types.TransactWriteItem{put})
}

func (w *DynamoTxWriter) CommitChangeOrderApproval(ctx context.Context, job entities.Job, c entities.ChangeOrder, escrow entities.EscrowAccount) error {
	orderPut, err := w.putPendingChangeOrder(c)
	if err != nil {
		return err
	}

	// The job must still be in progress; a cancellation racing the approval
	// must win, otherwise the extra hold would have no job to pay for.
	jobPut, err := w.putItem(w.jobsTable, toJobItem(job))
	if err != nil {
		return err
	}
	jobPut.Put.ConditionExpression = aws.String("#status = :in_progress")
	jobPut.Put.ExpressionAttributeNames = map[string]string{"#status": "status"}
	jobPut.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":in_progress": &types.AttributeValueMemberS{Value: string(entities.JobStatusInProgress)},
	}

	escrowPut, err := w.putHeldEscrow(escrow)
	if err != nil {
		return err
	}

	return w.commit(ctx, []types.TransactWriteItem{orderPut, jobPut, escrowPut})
}

func (w *DynamoTxWriter) CommitEscrowRelease(ctx context.Context, escrow entities.EscrowAccount, payment entities.Payment) error {
	return w.commitEscrowSettlement(ctx, escrow, payment)
}

func (w *DynamoTxWriter) CommitEscrowRefund(ctx context.Context, escrow entities.EscrowAccount, payment entities.Payment) error {
	return w.commitEscrowSettlement(ctx, escrow, payment)
}

func (w *DynamoTxWriter) commitEscrowSettlement(ctx context.Context, escrow entities.EscrowAccount, payment entities.Payment) error {
	escrowPut, err := w.putHeldEscrow(escrow)
	if err != nil {
		return err
	}

	paymentPut, err := w.putItem(w.paymentsTable, toPaymentItem(payment))
	if err != nil {
		return err
	}
	paymentPut.Put.ConditionExpression = aws.String("#status = :escrow")
	paymentPut.Put.ExpressionAttributeNames = map[string]string{"#status": "status"}
	paymentPut.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":escrow": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusEscrow)},
	}

	return w.commit(ctx, []types.TransactWriteItem{escrowPut, paymentPut})
}

func (w *DynamoTxWriter) putItem(table string, item interface{}) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("marshal item for %s: %w", table, err)
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(table),
			Item:      av,
		},
	}, nil
}

func (w *DynamoTxWriter) putPendingBid(b entities.Bid) (types.TransactWriteItem, error) {
	put, err := w.putItem(w.bidsTable, toBidItem(b))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	put.Put.ConditionExpression = aws.String("#status = :pending")
	put.Put.ExpressionAttributeNames = map[string]string{"#status": "status"}
	put.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(entities.BidStatusPending)},
	}
	return put, nil
}

func (w *DynamoTxWriter) putPendingChangeOrder(c entities.ChangeOrder) (types.TransactWriteItem, error) {
	put, err := w.putItem(w.changeOrdersTable, toChangeOrderItem(c))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	put.Put.ConditionExpression = aws.String("#status = :pending")
	put.Put.ExpressionAttributeNames = map[string]string{"#status": "status"}
	put.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(entities.ChangeOrderStatusPending)},
	}
	return put, nil
}

func (w *DynamoTxWriter) putHeldEscrow(e entities.EscrowAccount) (types.TransactWriteItem, error) {
	put, err := w.putItem(w.escrowTable, toEscrowItem(e))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	put.Put.ConditionExpression = aws.String("#status = :held")
	put.Put.ExpressionAttributeNames = map[string]string{"#status": "status"}
	put.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":held": &types.AttributeValueMemberS{Value: string(entities.EscrowStatusHeld)},
	}
	return put, nil
}

func (w *DynamoTxWriter) commit(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := w.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return interfaces.ErrTxConflict
				}
			}
		}
		return err
	}
	return nil
}
