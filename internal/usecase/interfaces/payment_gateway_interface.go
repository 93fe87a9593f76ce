package interfaces

import (
	"context"
	"encoding/json"
)

// HoldRequest asks the payment provider to authorize funds without capturing
// them. IdempotencyKey is the escrow account id, so retries converge on the
// same hold.
type HoldRequest struct {
	IdempotencyKey string
	Amount         float64
	Currency       string
	CustomerRef    string
	Description    string
}

// HoldHandle references an authorized, uncaptured hold at the provider.
type HoldHandle struct {
	Ref    string
	Status string
	Raw    json.RawMessage
}

// Receipt is the provider's record of a capture or refund.
type Receipt struct {
	Ref    string
	Status string
	Raw    json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// All calls are idempotent given a stable idempotency key. The engine commits
// local escrow/payment state only after the gateway confirms; a gateway error
// must leave local state untouched.

type IPaymentGateway interface {
	AuthorizeAndHold(ctx context.Context, req HoldRequest) (HoldHandle, error)
	Capture(ctx context.Context, holdRef, idempotencyKey string) (Receipt, error)
	Refund(ctx context.Context, holdRef, idempotencyKey, reason string) (Receipt, error)
	// CancelHold voids an authorized hold, used best-effort when a local
	// commit loses a race after the hold was placed.
	CancelHold(ctx context.Context, holdRef, idempotencyKey string) error
}
