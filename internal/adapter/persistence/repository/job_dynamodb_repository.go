package repository

import (
	"context"
	"errors"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsCustomerIDIndex  = "customer_id-index"
)

type timelineEntryItem struct {
	Status      string `dynamodbav:"status"`
	ActorID     string `dynamodbav:"actor_id"`
	ActorRole   string `dynamodbav:"actor_role"`
	Description string `dynamodbav:"description"`
	Timestamp   string `dynamodbav:"timestamp"`
}

type jobNoteItem struct {
	AuthorID   string `dynamodbav:"author_id"`
	AuthorRole string `dynamodbav:"author_role"`
	Text       string `dynamodbav:"text"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type jobPhotoItem struct {
	AuthorID   string `dynamodbav:"author_id"`
	AuthorRole string `dynamodbav:"author_role"`
	URL        string `dynamodbav:"url"`
	Caption    string `dynamodbav:"caption,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type jobItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	AssignedMechanicID string `dynamodbav:"assigned_mechanic_id,omitempty"`
	Category           string `dynamodbav:"category"`
	Description        string `dynamodbav:"description"`
	Location           string `dynamodbav:"location"`
	Urgency            string `dynamodbav:"urgency"`
	Status             string `dynamodbav:"status"`

	EstimatedCost            string `dynamodbav:"estimated_cost"`
	AcceptedBidAmount        string `dynamodbav:"accepted_bid_amount"`
	AdditionalApprovedAmount string `dynamodbav:"additional_approved_amount"`

	Notes    []jobNoteItem       `dynamodbav:"notes,omitempty"`
	Photos   []jobPhotoItem      `dynamodbav:"photos,omitempty"`
	Timeline []timelineEntryItem `dynamodbav:"timeline,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Update is a whole-item put conditioned on the stored status still matching
// the caller's expectation, which is the compare-and-swap the workflow's
// single-entity transitions rely on.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job, expectedStatus entities.JobStatus) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expectedStatus)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsCustomerIDIndex),
		KeyConditionExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, item := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:                       j.ID,
		CustomerID:               j.CustomerID,
		AssignedMechanicID:       j.AssignedMechanicID,
		Category:                 j.Category,
		Description:              j.Description,
		Location:                 j.Location,
		Urgency:                  string(j.Urgency),
		Status:                   string(j.Status),
		EstimatedCost:            floatToString(j.EstimatedCost),
		AcceptedBidAmount:        floatToString(j.AcceptedBidAmount),
		AdditionalApprovedAmount: floatToString(j.AdditionalApprovedAmount),
		CreatedAt:                formatTime(j.CreatedAt),
		UpdatedAt:                formatTime(j.UpdatedAt),
	}
	if j.CompletedAt != nil {
		it.CompletedAt = formatTime(*j.CompletedAt)
	}
	for _, n := range j.Notes {
		it.Notes = append(it.Notes, jobNoteItem{
			AuthorID:   n.AuthorID,
			AuthorRole: string(n.AuthorRole),
			Text:       n.Text,
			CreatedAt:  formatTime(n.CreatedAt),
		})
	}
	for _, p := range j.Photos {
		it.Photos = append(it.Photos, jobPhotoItem{
			AuthorID:   p.AuthorID,
			AuthorRole: string(p.AuthorRole),
			URL:        p.URL,
			Caption:    p.Caption,
			CreatedAt:  formatTime(p.CreatedAt),
		})
	}
	for _, e := range j.Timeline {
		it.Timeline = append(it.Timeline, timelineEntryItem{
			Status:      string(e.Status),
			ActorID:     e.ActorID,
			ActorRole:   string(e.ActorRole),
			Description: e.Description,
			Timestamp:   formatTime(e.Timestamp),
		})
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	j := entities.Job{
		ID:                       it.ID,
		CustomerID:               it.CustomerID,
		AssignedMechanicID:       it.AssignedMechanicID,
		Category:                 it.Category,
		Description:              it.Description,
		Location:                 it.Location,
		Urgency:                  entities.JobUrgency(it.Urgency),
		Status:                   entities.JobStatus(it.Status),
		EstimatedCost:            stringToFloat(it.EstimatedCost),
		AcceptedBidAmount:        stringToFloat(it.AcceptedBidAmount),
		AdditionalApprovedAmount: stringToFloat(it.AdditionalApprovedAmount),
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
	if it.CompletedAt != "" {
		t := parseTime(it.CompletedAt)
		j.CompletedAt = &t
	}
	for _, n := range it.Notes {
		j.Notes = append(j.Notes, entities.JobNote{
			AuthorID:   n.AuthorID,
			AuthorRole: entities.ActorRole(n.AuthorRole),
			Text:       n.Text,
			CreatedAt:  parseTime(n.CreatedAt),
		})
	}
	for _, p := range it.Photos {
		j.Photos = append(j.Photos, entities.JobPhoto{
			AuthorID:   p.AuthorID,
			AuthorRole: entities.ActorRole(p.AuthorRole),
			URL:        p.URL,
			Caption:    p.Caption,
			CreatedAt:  parseTime(p.CreatedAt),
		})
	}
	for _, e := range it.Timeline {
		j.Timeline = append(j.Timeline, entities.TimelineEntry{
			Status:      entities.JobStatus(e.Status),
			ActorID:     e.ActorID,
			ActorRole:   entities.ActorRole(e.ActorRole),
			Description: e.Description,
			Timestamp:   parseTime(e.Timestamp),
		})
	}
	return j
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
