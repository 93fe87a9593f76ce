package request

type SubmitBidRequest struct {
	MechanicID     string  `json:"mechanic_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	Kind           string  `json:"kind" binding:"required"`
	EstimatedHours float64 `json:"estimated_hours"`
	Message        string  `json:"message"`
}

// BidDecisionRequest accepts or rejects a bid on behalf of the job's customer.
type BidDecisionRequest struct {
	ActorRequest
}
