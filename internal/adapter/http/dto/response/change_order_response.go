package response

import (
	"time"

	"mechmarket/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type ChangeOrderResponse struct {
	ID                        string             `json:"id"`
	JobID                     string             `json:"job_id"`
	MechanicID                string             `json:"mechanic_id"`
	Reason                    string             `json:"reason"`
	LineItems                 []LineItemResponse `json:"line_items"`
	TotalAmount               float64            `json:"total_amount"`
	Status                    string             `json:"status"`
	RequiresImmediateApproval bool               `json:"requires_immediate_approval"`
	CreatedAt                 time.Time          `json:"created_at"`
	ExpiresAt                 time.Time          `json:"expires_at"`
	DecidedAt                 *time.Time         `json:"decided_at,omitempty"`
}

func FromChangeOrder(c entities.ChangeOrder) ChangeOrderResponse {
	resp := ChangeOrderResponse{
		ID:                        c.ID,
		JobID:                     c.JobID,
		MechanicID:                c.MechanicID,
		Reason:                    c.Reason,
		TotalAmount:               c.TotalAmount,
		Status:                    string(c.Status),
		RequiresImmediateApproval: c.RequiresImmediateApproval,
		CreatedAt:                 c.CreatedAt,
		ExpiresAt:                 c.ExpiresAt,
		DecidedAt:                 c.DecidedAt,
	}
	for _, li := range c.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total(),
		})
	}
	return resp
}

func FromChangeOrders(orders []entities.ChangeOrder) []ChangeOrderResponse {
	out := make([]ChangeOrderResponse, 0, len(orders))
	for _, c := range orders {
		out = append(out, FromChangeOrder(c))
	}
	return out
}

// DecideChangeOrderResponse carries the decision outcome; job and escrow are
// present only when the decision was an approval.
type DecideChangeOrderResponse struct {
	ChangeOrder ChangeOrderResponse `json:"change_order"`
	Job         *JobResponse        `json:"job,omitempty"`
	Escrow      *EscrowResponse     `json:"escrow,omitempty"`
}
