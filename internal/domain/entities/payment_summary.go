package entities

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PaymentSummary aggregates one subject's ledger entries for a payer.
type PaymentSummary struct {
	PayerID      string          `json:"payer_id"`
	SubjectID    string          `json:"subject_id"`
	Total        decimal.Decimal `json:"total"`
	Paid         decimal.Decimal `json:"paid"`
	Pending      decimal.Decimal `json:"pending"`
	PendingCount int             `json:"pending_count"`
	PaidCount    int             `json:"paid_count"`
	NextDue      *LedgerEntry    `json:"next_due,omitempty"`
	Entries      []LedgerEntry   `json:"entries"`
}

// SummarizePayments builds the summary from entries, skipping any that belong to another payer.
// NextDue is the pending entry with the earliest due date; entries without one come last.
func SummarizePayments(payerID, subjectID string, entries []LedgerEntry) PaymentSummary {
	s := PaymentSummary{
		PayerID:   payerID,
		SubjectID: subjectID,
		Total:     decimal.Zero,
		Paid:      decimal.Zero,
		Pending:   decimal.Zero,
		Entries:   []LedgerEntry{},
	}

	var pending []LedgerEntry
	for _, e := range entries {
		if e.PayerID != payerID {
			continue
		}
		s.Entries = append(s.Entries, e)
		s.Total = s.Total.Add(e.Amount)
		switch e.Status {
		case LedgerStatusPagado:
			s.Paid = s.Paid.Add(e.Amount)
			s.PaidCount++
		case LedgerStatusPendiente:
			s.Pending = s.Pending.Add(e.Amount)
			s.PendingCount++
			pending = append(pending, e)
		}
	}

	if len(pending) > 0 {
		sort.SliceStable(pending, func(i, j int) bool {
			a, b := pending[i].DueDate, pending[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
		next := pending[0]
		s.NextDue = &next
	}
	return s
}

// GroupByStatus splits entries into pending and paid, keeping their order.
func GroupByStatus(entries []LedgerEntry) (pending, paid []LedgerEntry) {
	pending, paid = []LedgerEntry{}, []LedgerEntry{}
	for _, e := range entries {
		if e.IsPaid() {
			paid = append(paid, e)
			continue
		}
		pending = append(pending, e)
	}
	return pending, paid
}

// GroupBySubject buckets entries by SubjectID; entries without a subject use "".
func GroupBySubject(entries []LedgerEntry) map[string][]LedgerEntry {
	out := make(map[string][]LedgerEntry)
	for _, e := range entries {
		out[e.SubjectID] = append(out[e.SubjectID], e)
	}
	return out
}
