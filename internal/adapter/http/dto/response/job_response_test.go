package response

import (
	"testing"
	"time"

	"mechmarket/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	completedAt := time.Date(2026, 2, 5, 16, 0, 0, 0, time.UTC)
	j := entities.Job{
		ID:                       "job-1",
		CustomerID:               "cust-1",
		AssignedMechanicID:       "mech-1",
		Category:                 "brakes",
		Urgency:                  entities.JobUrgencyHigh,
		Status:                   entities.JobStatusCompleted,
		AcceptedBidAmount:        300,
		AdditionalApprovedAmount: 120,
		Notes: []entities.JobNote{
			{AuthorID: "mech-1", AuthorRole: entities.ActorRoleMechanic, Text: "replaced pads"},
		},
		Photos: []entities.JobPhoto{
			{AuthorID: "mech-1", AuthorRole: entities.ActorRoleMechanic, URL: "https://cdn/img.jpg"},
		},
		Timeline: []entities.TimelineEntry{
			{Status: entities.JobStatusPosted, ActorID: "cust-1", ActorRole: entities.ActorRoleCustomer},
		},
		CompletedAt: &completedAt,
	}

	resp := FromJob(j)
	if resp.ID != "job-1" || resp.Status != "completed" || resp.Urgency != "high" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.TotalApprovedCost != 420 {
		t.Fatalf("expected total approved cost 420, got %v", resp.TotalApprovedCost)
	}
	if len(resp.Notes) != 1 || resp.Notes[0].AuthorRole != "mechanic" {
		t.Fatalf("unexpected notes: %+v", resp.Notes)
	}
	if len(resp.Photos) != 1 || resp.Photos[0].URL != "https://cdn/img.jpg" {
		t.Fatalf("unexpected photos: %+v", resp.Photos)
	}
	if len(resp.Timeline) != 1 || resp.Timeline[0].Status != "posted" {
		t.Fatalf("unexpected timeline: %+v", resp.Timeline)
	}
	if resp.CompletedAt == nil || !resp.CompletedAt.Equal(completedAt) {
		t.Fatalf("unexpected completed_at: %v", resp.CompletedAt)
	}
}

func TestFromChangeOrder(t *testing.T) {
	c := entities.ChangeOrder{
		ID:     "co-1",
		JobID:  "job-1",
		Status: entities.ChangeOrderStatusPending,
		LineItems: []entities.LineItem{
			{Description: "rotor", Quantity: 2, UnitPrice: 80},
		},
		TotalAmount: 160,
	}

	resp := FromChangeOrder(c)
	if resp.ID != "co-1" || resp.Status != "pending" || resp.TotalAmount != 160 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.LineItems) != 1 || resp.LineItems[0].Total != 160 {
		t.Fatalf("unexpected line items: %+v", resp.LineItems)
	}
}

func TestFromEscrowState(t *testing.T) {
	resp := FromEscrowState(
		entities.EscrowAccount{ID: "esc-1", Amount: 300, Currency: "BRL", Status: entities.EscrowStatusHeld},
		entities.Payment{ID: "pay-1", GrossAmount: 300, PlatformFee: 45, MechanicAmount: 255, Status: entities.PaymentStatusEscrow},
	)
	if resp.Escrow.ID != "esc-1" || resp.Escrow.Currency != "BRL" {
		t.Fatalf("unexpected escrow: %+v", resp.Escrow)
	}
	if resp.Payment.MechanicAmount != 255 || resp.Payment.Status != "escrow" {
		t.Fatalf("unexpected payment: %+v", resp.Payment)
	}
}
