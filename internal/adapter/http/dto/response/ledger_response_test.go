package response

import (
	"testing"
	"time"

	"teamflow_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromLedgerEntry(t *testing.T) {
	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	r := FromLedgerEntry(entities.LedgerEntry{
		ID:      "pago-1",
		PayerID: "fam-1",
		Concept: "Cuota 1/3",
		Amount:  decimal.RequireFromString("133.3"),
		Status:  entities.LedgerStatusPendiente,
		DueDate: &due,
	})

	if r.Amount != "133.30" {
		t.Fatalf("expected 133.30, got %s", r.Amount)
	}
	if r.DueDate != "2026-10-01" {
		t.Fatalf("expected 2026-10-01, got %s", r.DueDate)
	}
	if r.Status != "pendiente" {
		t.Fatalf("expected pendiente, got %s", r.Status)
	}
}

func TestFromPayerLedger_GroupsByStatusAndSubject(t *testing.T) {
	paidAt := time.Now().UTC()
	entries := []entities.LedgerEntry{
		{ID: "p1", PayerID: "fam-1", SubjectID: "kid-b", Amount: decimal.NewFromInt(10), Status: entities.LedgerStatusPendiente},
		{ID: "p2", PayerID: "fam-1", SubjectID: "kid-a", Amount: decimal.NewFromInt(20), Status: entities.LedgerStatusPagado, PaidAt: &paidAt},
		{ID: "p3", PayerID: "fam-1", SubjectID: "kid-a", Amount: decimal.NewFromInt(30), Status: entities.LedgerStatusPendiente},
	}

	r := FromPayerLedger(entries)

	if len(r.Pending) != 2 || len(r.Paid) != 1 {
		t.Fatalf("unexpected status grouping: pending=%d paid=%d", len(r.Pending), len(r.Paid))
	}
	if len(r.BySubject) != 2 || r.BySubject[0].SubjectID != "kid-a" || len(r.BySubject[0].Entries) != 2 {
		t.Fatalf("unexpected subject grouping: %+v", r.BySubject)
	}
}

func TestFromPaymentSummary(t *testing.T) {
	entries := []entities.LedgerEntry{
		{ID: "p1", PayerID: "fam-1", SubjectID: "kid-1", Amount: decimal.RequireFromString("45.25"), Status: entities.LedgerStatusPendiente},
	}
	updated := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	r := FromPaymentSummary(entities.SummarizePayments("fam-1", "kid-1", entries), updated)

	if r.Pending != "45.25" || r.Paid != "0.00" || r.PendingCount != 1 {
		t.Fatalf("unexpected summary: %+v", r)
	}
	if r.NextDue == nil || r.NextDue.ID != "p1" {
		t.Fatalf("expected next due p1, got %+v", r.NextDue)
	}
	if !r.LastUpdated.Equal(updated) {
		t.Fatalf("unexpected last_updated %v", r.LastUpdated)
	}
}

func TestFromInstallmentSchedule(t *testing.T) {
	cfg := entities.FinanceConfig{
		EventID:         "ev-1",
		OwnerEntityID:   "club-1",
		TotalPrice:      decimal.NewFromInt(500),
		InstallmentPlan: entities.InstallmentPlan{Allowed: []int{1, 3}},
		Deposit:         entities.Deposit{Enabled: true, Amount: decimal.NewFromInt(100)},
	}
	s, err := entities.PlanInstallments(cfg, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := FromInstallmentSchedule(s)

	if r.Total != "500.00" || r.Deposit != "100.00" || len(r.Installments) != 3 {
		t.Fatalf("unexpected schedule: %+v", r)
	}
	if r.Installments[2].Amount != "133.34" {
		t.Fatalf("expected last installment 133.34, got %s", r.Installments[2].Amount)
	}
}
