package entities

import "time"

// EscrowStatus is terminal once decided: held -> released | refunded.

type EscrowStatus string

const (
	EscrowStatusHeld     EscrowStatus = "held"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusRefunded EscrowStatus = "refunded"
)

func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowStatusReleased || s == EscrowStatusRefunded
}

// Release conditions recorded when escrow is opened.
const (
	ReleaseConditionJobCompleted     = "job_completed"
	ReleaseConditionCustomerApproval = "customer_approval"
)

// EscrowAccount is a fund hold tied 1:1 to a Job, opened when a bid is
// accepted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Invariant: while held, Amount equals the accepted bid amount plus every
// approved change order total. A terminal account is immutable.
type EscrowAccount struct {
	ID         string  `json:"id"`
	JobID      string  `json:"job_id"`
	CustomerID string  `json:"customer_id"`
	MechanicID string  `json:"mechanic_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`

	Status            EscrowStatus `json:"status"`
	ReleaseConditions []string     `json:"release_conditions"`

	// HoldRef is the payment-gateway handle for the authorized hold. The
	// escrow account id doubles as the gateway idempotency key.
	HoldRef string `json:"hold_ref,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	RefundedAt *time.Time `json:"refunded_at,omitempty"`
}
