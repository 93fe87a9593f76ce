package response

import (
	"time"

	"mechmarket/internal/domain/entities"
)

type EscrowResponse struct {
	ID                string     `json:"id"`
	JobID             string     `json:"job_id"`
	CustomerID        string     `json:"customer_id"`
	MechanicID        string     `json:"mechanic_id"`
	Amount            float64    `json:"amount"`
	Currency          string     `json:"currency"`
	Status            string     `json:"status"`
	ReleaseConditions []string   `json:"release_conditions,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ReleasedAt        *time.Time `json:"released_at,omitempty"`
	RefundedAt        *time.Time `json:"refunded_at,omitempty"`
}

func FromEscrow(e entities.EscrowAccount) EscrowResponse {
	return EscrowResponse{
		ID:                e.ID,
		JobID:             e.JobID,
		CustomerID:        e.CustomerID,
		MechanicID:        e.MechanicID,
		Amount:            e.Amount,
		Currency:          e.Currency,
		Status:            string(e.Status),
		ReleaseConditions: e.ReleaseConditions,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
		ReleasedAt:        e.ReleasedAt,
		RefundedAt:        e.RefundedAt,
	}
}

type PaymentResponse struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	EscrowAccountID string    `json:"escrow_account_id"`
	GrossAmount     float64   `json:"gross_amount"`
	PlatformFee     float64   `json:"platform_fee"`
	MechanicAmount  float64   `json:"mechanic_amount"`
	ServiceCategory string    `json:"service_category"`
	Status          string    `json:"status"`
	RefundReason    string    `json:"refund_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		JobID:           p.JobID,
		EscrowAccountID: p.EscrowAccountID,
		GrossAmount:     p.GrossAmount,
		PlatformFee:     p.PlatformFee,
		MechanicAmount:  p.MechanicAmount,
		ServiceCategory: p.ServiceCategory,
		Status:          string(p.Status),
		RefundReason:    p.RefundReason,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// EscrowStateResponse pairs an escrow account with its payment record.
type EscrowStateResponse struct {
	Escrow  EscrowResponse  `json:"escrow"`
	Payment PaymentResponse `json:"payment"`
}

func FromEscrowState(e entities.EscrowAccount, p entities.Payment) EscrowStateResponse {
	return EscrowStateResponse{
		Escrow:  FromEscrow(e),
		Payment: FromPayment(p),
	}
}
