package response

import (
	"sort"
	"time"

	"teamflow_payments/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type LedgerEntryResponse struct {
	ID            string     `json:"id"`
	PayerID       string     `json:"payer_id"`
	SubjectID     string     `json:"jugador_id,omitempty"`
	EventID       string     `json:"event_id,omitempty"`
	Concept       string     `json:"concepto"`
	Amount        string     `json:"monto"`
	Currency      string     `json:"moneda,omitempty"`
	Status        string     `json:"estado"`
	DueDate       string     `json:"fecha_vencimiento,omitempty"`
	PaidAt        *time.Time `json:"fecha_pago,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	GatewayStatus string     `json:"stripe_status,omitempty"`
}

func FromLedgerEntry(e entities.LedgerEntry) LedgerEntryResponse {
	out := LedgerEntryResponse{
		ID:            e.ID,
		PayerID:       e.PayerID,
		SubjectID:     e.SubjectID,
		EventID:       e.EventID,
		Concept:       e.Concept,
		Amount:        e.Amount.StringFixed(2),
		Currency:      e.Currency,
		Status:        string(e.Status),
		PaidAt:        e.PaidAt,
		CreatedAt:     e.CreatedAt,
		GatewayStatus: e.GatewayStatus,
	}
	if e.DueDate != nil {
		out.DueDate = e.DueDate.Format(dateLayout)
	}
	return out
}

func FromLedgerEntries(entries []entities.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromLedgerEntry(e))
	}
	return out
}

// SubjectPaymentsResponse is one player's slice of a payer's ledger.
type SubjectPaymentsResponse struct {
	SubjectID string                `json:"jugador_id"`
	Entries   []LedgerEntryResponse `json:"pagos"`
}

// PayerPaymentsResponse is the payer portal view: entries grouped by status and by player.
type PayerPaymentsResponse struct {
	Pending   []LedgerEntryResponse     `json:"pendientes"`
	Paid      []LedgerEntryResponse     `json:"pagados"`
	BySubject []SubjectPaymentsResponse `json:"por_jugador"`
}

func FromPayerLedger(entries []entities.LedgerEntry) PayerPaymentsResponse {
	pending, paid := entities.GroupByStatus(entries)
	grouped := entities.GroupBySubject(entries)

	subjects := make([]string, 0, len(grouped))
	for id := range grouped {
		subjects = append(subjects, id)
	}
	sort.Strings(subjects)

	bySubject := make([]SubjectPaymentsResponse, 0, len(subjects))
	for _, id := range subjects {
		bySubject = append(bySubject, SubjectPaymentsResponse{SubjectID: id, Entries: FromLedgerEntries(grouped[id])})
	}

	return PayerPaymentsResponse{
		Pending:   FromLedgerEntries(pending),
		Paid:      FromLedgerEntries(paid),
		BySubject: bySubject,
	}
}

type PaymentSummaryResponse struct {
	PayerID      string                `json:"payer_id"`
	SubjectID    string                `json:"jugador_id"`
	Total        string                `json:"total"`
	Paid         string                `json:"pagado"`
	Pending      string                `json:"pendiente"`
	PendingCount int                   `json:"pendientes"`
	PaidCount    int                   `json:"pagados"`
	NextDue      *LedgerEntryResponse  `json:"proximo_vencimiento,omitempty"`
	Entries      []LedgerEntryResponse `json:"pagos"`
	LastUpdated  time.Time             `json:"last_updated"`
}

func FromPaymentSummary(s entities.PaymentSummary, lastUpdated time.Time) PaymentSummaryResponse {
	out := PaymentSummaryResponse{
		PayerID:      s.PayerID,
		SubjectID:    s.SubjectID,
		Total:        s.Total.StringFixed(2),
		Paid:         s.Paid.StringFixed(2),
		Pending:      s.Pending.StringFixed(2),
		PendingCount: s.PendingCount,
		PaidCount:    s.PaidCount,
		Entries:      FromLedgerEntries(s.Entries),
		LastUpdated:  lastUpdated,
	}
	if s.NextDue != nil {
		next := FromLedgerEntry(*s.NextDue)
		out.NextDue = &next
	}
	return out
}
