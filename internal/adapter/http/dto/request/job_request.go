package request

type CreateJobRequest struct {
	CustomerID    string  `json:"customer_id" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	Urgency       string  `json:"urgency" binding:"required"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type TransitionJobRequest struct {
	ActorRequest
	Status      string `json:"status" binding:"required"`
	Description string `json:"description"`
}

type JobNoteRequest struct {
	ActorRequest
	Text string `json:"text" binding:"required"`
}

type JobPhotoRequest struct {
	ActorRequest
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}
