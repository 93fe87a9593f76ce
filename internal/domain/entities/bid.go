package entities

import "time"

// BidStatus is terminal once decided: pending -> accepted | rejected.

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

func (s BidStatus) IsTerminal() bool {
	return s == BidStatusAccepted || s == BidStatusRejected
}

// BidKind distinguishes a fixed-price offer from an hourly one.

type BidKind string

const (
	BidKindFixed  BidKind = "fixed"
	BidKindHourly BidKind = "hourly"
)

func (k BidKind) IsValid() bool {
	return k == BidKindFixed || k == BidKindHourly
}

// Bid is a mechanic's offer against exactly one Job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Invariant: for a given Job at most one Bid is accepted; accepting one bid
// rejects every other pending bid on the same job in the same commit. Bids are
// never deleted.
type Bid struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	MechanicID string    `json:"mechanic_id"`
	Amount     float64   `json:"amount"`
	Kind       BidKind   `json:"kind"`
	// EstimatedHours is only meaningful for hourly bids.
	EstimatedHours float64   `json:"estimated_hours,omitempty"`
	Message        string    `json:"message,omitempty"`
	Status         BidStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
