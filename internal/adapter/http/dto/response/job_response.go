package response

import (
	"time"

	"mechmarket/internal/domain/entities"
)

type TimelineEntryResponse struct {
	Status      string    `json:"status"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type JobNoteResponse struct {
	AuthorID   string    `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type JobPhotoResponse struct {
	AuthorID   string    `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type JobResponse struct {
	ID                       string                  `json:"id"`
	CustomerID               string                  `json:"customer_id"`
	AssignedMechanicID       string                  `json:"assigned_mechanic_id,omitempty"`
	Category                 string                  `json:"category"`
	Description              string                  `json:"description"`
	Location                 string                  `json:"location"`
	Urgency                  string                  `json:"urgency"`
	Status                   string                  `json:"status"`
	EstimatedCost            float64                 `json:"estimated_cost"`
	AcceptedBidAmount        float64                 `json:"accepted_bid_amount"`
	AdditionalApprovedAmount float64                 `json:"additional_approved_amount"`
	TotalApprovedCost        float64                 `json:"total_approved_cost"`
	Notes                    []JobNoteResponse       `json:"notes,omitempty"`
	Photos                   []JobPhotoResponse      `json:"photos,omitempty"`
	Timeline                 []TimelineEntryResponse `json:"timeline,omitempty"`
	CreatedAt                time.Time               `json:"created_at"`
	UpdatedAt                time.Time               `json:"updated_at"`
	CompletedAt              *time.Time              `json:"completed_at,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	resp := JobResponse{
		ID:                       j.ID,
		CustomerID:               j.CustomerID,
		AssignedMechanicID:       j.AssignedMechanicID,
		Category:                 j.Category,
		Description:              j.Description,
		Location:                 j.Location,
		Urgency:                  string(j.Urgency),
		Status:                   string(j.Status),
		EstimatedCost:            j.EstimatedCost,
		AcceptedBidAmount:        j.AcceptedBidAmount,
		AdditionalApprovedAmount: j.AdditionalApprovedAmount,
		TotalApprovedCost:        j.TotalApprovedCost(),
		CreatedAt:                j.CreatedAt,
		UpdatedAt:                j.UpdatedAt,
		CompletedAt:              j.CompletedAt,
	}
	for _, n := range j.Notes {
		resp.Notes = append(resp.Notes, JobNoteResponse{
			AuthorID:   n.AuthorID,
			AuthorRole: string(n.AuthorRole),
			Text:       n.Text,
			CreatedAt:  n.CreatedAt,
		})
	}
	for _, p := range j.Photos {
		resp.Photos = append(resp.Photos, JobPhotoResponse{
			AuthorID:   p.AuthorID,
			AuthorRole: string(p.AuthorRole),
			URL:        p.URL,
			Caption:    p.Caption,
			CreatedAt:  p.CreatedAt,
		})
	}
	resp.Timeline = FromTimeline(j.Timeline)
	return resp
}

func FromTimeline(entries []entities.TimelineEntry) []TimelineEntryResponse {
	out := make([]TimelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TimelineEntryResponse{
			Status:      string(e.Status),
			ActorID:     e.ActorID,
			ActorRole:   string(e.ActorRole),
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}
	return out
}
