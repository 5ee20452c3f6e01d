package request

import (
	"errors"
	"strings"
	"time"

	"teamflow_payments/internal/usecase"
)

const dateLayout = "2006-01-02"

var ErrInvalidFirstDueDate = errors.New("first_due_date must be YYYY-MM-DD")

// CreatePlanRequest asks for the ledger entries of a finance plan.
type CreatePlanRequest struct {
	PayerID      string `json:"payer_id" binding:"required"`
	SubjectID    string `json:"subject_id"`
	EventID      string `json:"event_id" binding:"required"`
	ClubID       string `json:"club_id"`
	OrganizerID  string `json:"organizer_id"`
	Installments int    `json:"installments" binding:"required"`
	FirstDueDate string `json:"first_due_date"`
	ConceptLabel string `json:"concept_label"`
}

func (r CreatePlanRequest) ToInput() (usecase.CreatePlanInput, error) {
	in := usecase.CreatePlanInput{
		PayerID:      strings.TrimSpace(r.PayerID),
		SubjectID:    strings.TrimSpace(r.SubjectID),
		EventID:      strings.TrimSpace(r.EventID),
		ClubID:       strings.TrimSpace(r.ClubID),
		OrganizerID:  strings.TrimSpace(r.OrganizerID),
		Installments: r.Installments,
		ConceptLabel: strings.TrimSpace(r.ConceptLabel),
	}
	if raw := strings.TrimSpace(r.FirstDueDate); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return usecase.CreatePlanInput{}, ErrInvalidFirstDueDate
		}
		in.FirstDueDate = &d
	}
	return in, nil
}
