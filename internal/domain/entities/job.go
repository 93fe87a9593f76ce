package entities

import "time"

// JobStatus represents the lifecycle of a service request.
//
// Graph:
//
//	posted <-> bidding -> accepted -> scheduled -> in_progress -> completed
//
// cancelled is reachable from every non-terminal state. posted and bidding are
// both "open for bids" states; acceptance of a bid is the only way into
// accepted.

type JobStatus string

const (
	JobStatusPosted     JobStatus = "posted"
	JobStatusBidding    JobStatus = "bidding"
	JobStatusAccepted   JobStatus = "accepted"
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// JobUrgency is declared by the customer at posting time.

type JobUrgency string

const (
	JobUrgencyLow       JobUrgency = "low"
	JobUrgencyNormal    JobUrgency = "normal"
	JobUrgencyHigh      JobUrgency = "high"
	JobUrgencyEmergency JobUrgency = "emergency"
)

var validJobStatuses = map[JobStatus]bool{
	JobStatusPosted:     true,
	JobStatusBidding:    true,
	JobStatusAccepted:   true,
	JobStatusScheduled:  true,
	JobStatusInProgress: true,
	JobStatusCompleted:  true,
	JobStatusCancelled:  true,
}

var terminalJobStatuses = map[JobStatus]bool{
	JobStatusCompleted: true,
	JobStatusCancelled: true,
}

var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPosted:     {JobStatusBidding, JobStatusAccepted, JobStatusCancelled},
	JobStatusBidding:    {JobStatusPosted, JobStatusAccepted, JobStatusCancelled},
	JobStatusAccepted:   {JobStatusScheduled, JobStatusCancelled},
	JobStatusScheduled:  {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCancelled},
}

func (s JobStatus) IsValid() bool {
	return validJobStatuses[s]
}

func (s JobStatus) IsTerminal() bool {
	return terminalJobStatuses[s]
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	for _, next := range jobTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TimelineEntry is an append-only audit record of a job status change.
type TimelineEntry struct {
	Status      JobStatus `json:"status"`
	ActorID     string    `json:"actor_id"`
	ActorRole   ActorRole `json:"actor_role"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// JobNote is an append-only free-text note attached while work is in progress.
type JobNote struct {
	AuthorID   string    `json:"author_id"`
	AuthorRole ActorRole `json:"author_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// JobPhoto is an append-only photo reference attached while work is in progress.
type JobPhoto struct {
	AuthorID   string    `json:"author_id"`
	AuthorRole ActorRole `json:"author_role"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Job is a customer service request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Invariant: AssignedMechanicID is non-empty iff Status is at or beyond
// accepted. Jobs are never deleted, only status-terminated.
type Job struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customer_id"`
	AssignedMechanicID string     `json:"assigned_mechanic_id,omitempty"`
	Category           string     `json:"category"`
	Description        string     `json:"description"`
	Location           string     `json:"location"`
	Urgency            JobUrgency `json:"urgency"`
	Status             JobStatus  `json:"status"`

	EstimatedCost            float64 `json:"estimated_cost,omitempty"`
	AcceptedBidAmount        float64 `json:"accepted_bid_amount,omitempty"`
	AdditionalApprovedAmount float64 `json:"additional_approved_amount,omitempty"`

	Notes    []JobNote       `json:"notes,omitempty"`
	Photos   []JobPhoto      `json:"photos,omitempty"`
	Timeline []TimelineEntry `json:"timeline,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsAvailableForBidding is a pure predicate, recomputed on every read and never
// stored, so a stale cached value can't open a race window.
func (j Job) IsAvailableForBidding() bool {
	if j.Status != JobStatusPosted && j.Status != JobStatusBidding {
		return false
	}
	return j.AssignedMechanicID == ""
}

// TotalApprovedCost is the accepted bid amount plus all approved change orders.
func (j Job) TotalApprovedCost() float64 {
	return j.AcceptedBidAmount + j.AdditionalApprovedAmount
}
