package entities

import "time"

// PaymentStatus mirrors the escrow account in lockstep:
// held<->escrow, released<->completed, refunded<->refunded.
// disputed marks a payment frozen by an open dispute.

type PaymentStatus string

const (
	PaymentStatusEscrow    PaymentStatus = "escrow"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusDisputed  PaymentStatus = "disputed"
)

// Payment is the ledger record of funds movement for an escrow account,
// carrying the commission split.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// MechanicAmount + PlatformFee == GrossAmount at all times.
type Payment struct {
	ID              string  `json:"id"`
	JobID           string  `json:"job_id"`
	EscrowAccountID string  `json:"escrow_account_id"`
	GrossAmount     float64 `json:"gross_amount"`
	PlatformFee     float64 `json:"platform_fee"`
	MechanicAmount  float64 `json:"mechanic_amount"`
	ServiceCategory string  `json:"service_category"`

	Status PaymentStatus `json:"status"`

	// RefundReason is set when the payment is refunded.
	RefundReason string `json:"refund_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
