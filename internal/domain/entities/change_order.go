package entities

import "time"

// ChangeOrderStatus is terminal once decided:
// pending -> approved | rejected | expired | cancelled.

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending   ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved  ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected  ChangeOrderStatus = "rejected"
	ChangeOrderStatusExpired   ChangeOrderStatus = "expired"
	ChangeOrderStatusCancelled ChangeOrderStatus = "cancelled"
)

func (s ChangeOrderStatus) IsTerminal() bool {
	return s != ChangeOrderStatusPending
}

// LineItem is a nested cost entry owned exclusively by its change order.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Total is quantity times unit price.
func (li LineItem) Total() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// SumLineItems computes the total of a line item list.
func SumLineItems(items []LineItem) float64 {
	total := 0.0
	for _, li := range items {
		total += li.Total()
	}
	return total
}

// ChangeOrder is a mechanic-proposed addition to job scope/cost raised
// mid-job, requiring customer approval before it becomes binding.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Invariant: TotalAmount equals the sum of the line items. Once ExpiresAt
// passes without a decision the order is treated as expired and can no longer
// be approved or rejected. Change orders are never deleted.
type ChangeOrder struct {
	ID         string `json:"id"`
	JobID      string `json:"job_id"`
	MechanicID string `json:"mechanic_id"`
	CustomerID string `json:"customer_id"`

	Reason    string     `json:"reason"`
	LineItems []LineItem `json:"line_items"`

	TotalAmount               float64 `json:"total_amount"`
	RequiresImmediateApproval bool    `json:"requires_immediate_approval,omitempty"`

	Status    ChangeOrderStatus `json:"status"`
	ExpiresAt time.Time         `json:"expires_at"`

	CreatedAt time.Time  `json:"created_at"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

// IsExpiredAt reports whether the decision horizon has passed at t.
func (c ChangeOrder) IsExpiredAt(t time.Time) bool {
	return t.After(c.ExpiresAt)
}
