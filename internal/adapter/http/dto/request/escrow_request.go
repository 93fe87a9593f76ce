package request

type RefundEscrowRequest struct {
	ActorRequest
	Reason string `json:"reason" binding:"required"`
}
