package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidJobID       = errors.New("invalid job id")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidUrgency     = errors.New("invalid urgency")
	ErrInvalidActor       = errors.New("invalid actor")
	ErrNotAuthorized      = errors.New("actor not authorized for this operation")
	ErrIllegalTransition  = errors.New("illegal job status transition")
	ErrJobNotInProgress   = errors.New("job is not in progress")
	ErrEmptyNote          = errors.New("empty note")
	ErrEmptyPhotoURL      = errors.New("empty photo url")
	ErrInvalidCostValue   = errors.New("invalid cost value")
	ErrTransitionConflict = errors.New("job changed concurrently, retry")
)

// JobDraft carries the customer input for a new service request.
type JobDraft struct {
	CustomerID    string
	Category      string
	Description   string
	Location      string
	Urgency       entities.JobUrgency
	EstimatedCost float64
}

// IJobLedger owns Job entities and the job status state machine.

type IJobLedger interface {
	CreateJob(ctx context.Context, draft JobDraft) (entities.Job, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	Transition(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, description string) (entities.Job, error)
	AppendNote(ctx context.Context, jobID string, actor entities.Actor, text string) (entities.Job, error)
	AppendPhoto(ctx context.Context, jobID string, actor entities.Actor, url, caption string) (entities.Job, error)
	DeriveTimeline(j entities.Job) []entities.TimelineEntry

	// ApplyTransition is the pure half of Transition: it validates the edge
	// and the actor and returns the mutated job without persisting it. The
	// bid-acceptance and change-order transactions build on it.
	ApplyTransition(j entities.Job, target entities.JobStatus, actor entities.Actor, description string, at time.Time) (entities.Job, error)
}

type JobLedger struct {
	repo interfaces.IJobRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IJobLedger = (*JobLedger)(nil)

func NewJobLedger(repo interfaces.IJobRepository, log *zap.Logger) *JobLedger {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobLedger{repo: repo, log: log, now: time.Now}
}

func (l *JobLedger) CreateJob(ctx context.Context, draft JobDraft) (entities.Job, error) {
	draft.CustomerID = strings.TrimSpace(draft.CustomerID)
	draft.Category = strings.TrimSpace(draft.Category)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Location = strings.TrimSpace(draft.Location)

	if draft.CustomerID == "" || draft.Category == "" || draft.Description == "" || draft.Location == "" {
		return entities.Job{}, ErrMissingField
	}
	if draft.Urgency == "" {
		draft.Urgency = entities.JobUrgencyNormal
	}
	switch draft.Urgency {
	case entities.JobUrgencyLow, entities.JobUrgencyNormal, entities.JobUrgencyHigh, entities.JobUrgencyEmergency:
	default:
		return entities.Job{}, ErrInvalidUrgency
	}
	if draft.EstimatedCost < 0 {
		return entities.Job{}, ErrInvalidCostValue
	}

	now := l.now().UTC()
	j := entities.Job{
		ID:            uuid.NewString(),
		CustomerID:    draft.CustomerID,
		Category:      draft.Category,
		Description:   draft.Description,
		Location:      draft.Location,
		Urgency:       draft.Urgency,
		Status:        entities.JobStatusPosted,
		EstimatedCost: draft.EstimatedCost,
		Timeline: []entities.TimelineEntry{{
			Status:      entities.JobStatusPosted,
			ActorID:     draft.CustomerID,
			ActorRole:   entities.ActorRoleCustomer,
			Description: "job posted",
			Timestamp:   now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := l.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	l.log.Info("job created",
		zap.String("job_id", created.ID),
		zap.String("customer_id", created.CustomerID),
		zap.String("category", created.Category))
	return created, nil
}

func (l *JobLedger) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := l.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// ApplyTransition validates the edge and the actor and returns the mutated
// job. It does not persist.
func (l *JobLedger) ApplyTransition(j entities.Job, target entities.JobStatus, actor entities.Actor, description string, at time.Time) (entities.Job, error) {
	if !target.IsValid() {
		return entities.Job{}, ErrIllegalTransition
	}
	if !j.Status.CanTransitionTo(target) {
		return entities.Job{}, ErrIllegalTransition
	}
	if err := authorizeTransition(j, target, actor); err != nil {
		return entities.Job{}, err
	}

	at = at.UTC()
	if description == "" {
		description = "status changed to " + string(target)
	}
	j.Status = target
	j.UpdatedAt = at
	if target == entities.JobStatusCompleted {
		completedAt := at
		j.CompletedAt = &completedAt
	}
	j.Timeline = append(j.Timeline, entities.TimelineEntry{
		Status:      target,
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Description: description,
		Timestamp:   at,
	})
	return j, nil
}

func (l *JobLedger) Transition(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, description string) (entities.Job, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Job{}, ErrInvalidActor
	}
	if target == entities.JobStatusAccepted {
		// The accepted edge assigns the mechanic and opens escrow in the
		// same transaction; it is only walkable through bid acceptance.
		return entities.Job{}, ErrIllegalTransition
	}
	j, err := l.GetJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	from := j.Status
	updated, err := l.ApplyTransition(j, target, actor, description, l.now())
	if err != nil {
		return entities.Job{}, err
	}

	persisted, err := l.repo.Update(ctx, updated, from)
	if err != nil {
		return entities.Job{}, err
	}
	if persisted.ID == "" {
		// CAS lost: the job moved under us between read and write.
		return entities.Job{}, ErrTransitionConflict
	}
	l.log.Info("job transitioned",
		zap.String("job_id", jobID),
		zap.String("from", string(from)),
		zap.String("to", string(target)),
		zap.String("actor_id", actor.ID),
		zap.String("actor_role", string(actor.Role)))
	return persisted, nil
}

func (l *JobLedger) AppendNote(ctx context.Context, jobID string, actor entities.Actor, text string) (entities.Job, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Job{}, ErrEmptyNote
	}
	return l.appendWhileInProgress(ctx, jobID, actor, func(j *entities.Job, at time.Time) {
		j.Notes = append(j.Notes, entities.JobNote{
			AuthorID:   actor.ID,
			AuthorRole: actor.Role,
			Text:       text,
			CreatedAt:  at,
		})
	})
}

func (l *JobLedger) AppendPhoto(ctx context.Context, jobID string, actor entities.Actor, url, caption string) (entities.Job, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return entities.Job{}, ErrEmptyPhotoURL
	}
	return l.appendWhileInProgress(ctx, jobID, actor, func(j *entities.Job, at time.Time) {
		j.Photos = append(j.Photos, entities.JobPhoto{
			AuthorID:   actor.ID,
			AuthorRole: actor.Role,
			URL:        url,
			Caption:    strings.TrimSpace(caption),
			CreatedAt:  at,
		})
	})
}

func (l *JobLedger) appendWhileInProgress(ctx context.Context, jobID string, actor entities.Actor, mutate func(*entities.Job, time.Time)) (entities.Job, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Job{}, ErrInvalidActor
	}
	j, err := l.GetJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.Status != entities.JobStatusInProgress {
		return entities.Job{}, ErrJobNotInProgress
	}
	if !isJobParty(j, actor) {
		return entities.Job{}, ErrNotAuthorized
	}

	at := l.now().UTC()
	mutate(&j, at)
	j.UpdatedAt = at

	persisted, err := l.repo.Update(ctx, j, entities.JobStatusInProgress)
	if err != nil {
		return entities.Job{}, err
	}
	if persisted.ID == "" {
		return entities.Job{}, ErrTransitionConflict
	}
	return persisted, nil
}

// DeriveTimeline projects the status audit log sorted ascending. When the job
// carries a completion timestamp but no recorded completion event (out-of-band
// completion), a synthesized entry is added so the projection is always
// consistent with the terminal state.
func (l *JobLedger) DeriveTimeline(j entities.Job) []entities.TimelineEntry {
	timeline := make([]entities.TimelineEntry, len(j.Timeline))
	copy(timeline, j.Timeline)

	if j.CompletedAt != nil {
		recorded := false
		for _, e := range timeline {
			if e.Status == entities.JobStatusCompleted {
				recorded = true
				break
			}
		}
		if !recorded {
			timeline = append(timeline, entities.TimelineEntry{
				Status:      entities.JobStatusCompleted,
				ActorID:     j.AssignedMechanicID,
				ActorRole:   entities.ActorRoleMechanic,
				Description: "job completed",
				Timestamp:   *j.CompletedAt,
			})
		}
	}

	sort.SliceStable(timeline, func(a, b int) bool {
		return timeline[a].Timestamp.Before(timeline[b].Timestamp)
	})
	return timeline
}

// authorizeTransition enforces which party may walk each edge:
//   - the customer toggles posted<->bidding, accepts (via bid acceptance) and
//     cancels any non-terminal job
//   - the assigned mechanic drives scheduled -> in_progress -> completed
//   - scheduling is open to either party of the job
//   - admins may cancel (dispute resolution)
func authorizeTransition(j entities.Job, target entities.JobStatus, actor entities.Actor) error {
	isCustomer := actor.Role == entities.ActorRoleCustomer && actor.ID == j.CustomerID
	isMechanic := actor.Role == entities.ActorRoleMechanic && j.AssignedMechanicID != "" && actor.ID == j.AssignedMechanicID

	switch target {
	case entities.JobStatusPosted, entities.JobStatusBidding, entities.JobStatusAccepted:
		if !isCustomer {
			return ErrNotAuthorized
		}
	case entities.JobStatusScheduled:
		if !isCustomer && !isMechanic {
			return ErrNotAuthorized
		}
	case entities.JobStatusInProgress, entities.JobStatusCompleted:
		if !isMechanic {
			return ErrNotAuthorized
		}
	case entities.JobStatusCancelled:
		if !isCustomer && actor.Role != entities.ActorRoleAdmin {
			return ErrNotAuthorized
		}
	default:
		return ErrIllegalTransition
	}
	return nil
}

func isJobParty(j entities.Job, actor entities.Actor) bool {
	switch actor.Role {
	case entities.ActorRoleCustomer:
		return actor.ID == j.CustomerID
	case entities.ActorRoleMechanic:
		return j.AssignedMechanicID != "" && actor.ID == j.AssignedMechanicID
	}
	return false
}
