package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPayerID     = errors.New("invalid payer id")
	ErrInvalidSubjectID   = errors.New("invalid subject id")
	ErrInvalidPlanRequest = errors.New("invalid payment plan request")
	ErrPlanHasNoCharges   = errors.New("payment plan has nothing to charge")
	ErrSummaryUnavailable = errors.New("payment summary cache not configured")
)

const depositConcept = "Matrícula"

// CreatePlanInput describes the obligations to create for one payer and subject.
type CreatePlanInput struct {
	PayerID      string
	SubjectID    string
	EventID      string
	ClubID       string
	OrganizerID  string
	Installments int
	FirstDueDate *time.Time
	ConceptLabel string
}

// ILedgerUseCase exposes ledger reads for payers and plan-based creation for entity admins.
type ILedgerUseCase interface {
	PayerForUser(ctx context.Context, userID string) (string, error)
	ListForPayer(ctx context.Context, payerID string) ([]entities.LedgerEntry, error)
	ListPending(ctx context.Context, payerID string) ([]entities.LedgerEntry, error)
	GetByID(ctx context.Context, id string) (entities.LedgerEntry, error)
	ListForSubject(ctx context.Context, actorUserID, subjectID string) ([]entities.LedgerEntry, error)
	SubjectSummary(ctx context.Context, payerID, subjectID string, refresh bool) (entities.PaymentSummary, time.Time, error)
	CreateFromPlan(ctx context.Context, actorUserID string, in CreatePlanInput) ([]entities.LedgerEntry, error)
}

type LedgerUseCase struct {
	repo     interfaces.ILedgerRepository
	profiles interfaces.IProfileRepository
	configs  IFinanceConfigUseCase
	cache    interfaces.IPaymentSummaryCache
	currency string
	log      *zap.Logger
	now      func() time.Time
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.ILedgerRepository, profiles interfaces.IProfileRepository, configs IFinanceConfigUseCase, cache interfaces.IPaymentSummaryCache, defaultCurrency string, log *zap.Logger) *LedgerUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &LedgerUseCase{
		repo:     repo,
		profiles: profiles,
		configs:  configs,
		cache:    cache,
		currency: strings.ToLower(defaultCurrency),
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// PayerForUser resolves the payer identity of a family user.
func (u *LedgerUseCase) PayerForUser(ctx context.Context, userID string) (string, error) {
	profile, err := loadProfile(ctx, u.profiles, userID)
	if err != nil {
		return "", err
	}
	payerID, err := requirePayer(profile)
	if err != nil {
		u.log.Warn("[ledger][usecase] payer view forbidden", zap.String("user_id", profile.UserID), zap.Stringer("role", profile.Role))
		return "", err
	}
	return payerID, nil
}

func (u *LedgerUseCase) ListForPayer(ctx context.Context, payerID string) ([]entities.LedgerEntry, error) {
	payerID = strings.TrimSpace(payerID)
	if payerID == "" {
		return nil, ErrInvalidPayerID
	}
	return u.repo.ListByPayerID(ctx, payerID)
}

func (u *LedgerUseCase) ListPending(ctx context.Context, payerID string) ([]entities.LedgerEntry, error) {
	all, err := u.ListForPayer(ctx, payerID)
	if err != nil {
		return nil, err
	}
	pending, _ := entities.GroupByStatus(all)
	return pending, nil
}

func (u *LedgerUseCase) GetByID(ctx context.Context, id string) (entities.LedgerEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LedgerEntry{}, ErrInvalidEntryID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	if e.ID == "" {
		return entities.LedgerEntry{}, ErrLedgerEntryNotFound
	}
	return e, nil
}

// ListForSubject lists every payer's entries for one player. Admin only.
func (u *LedgerUseCase) ListForSubject(ctx context.Context, actorUserID, subjectID string) ([]entities.LedgerEntry, error) {
	actor, err := loadProfile(ctx, u.profiles, actorUserID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entities.RoleAdmin {
		u.log.Warn("[ledger][usecase] subject listing forbidden", zap.String("user_id", actor.UserID), zap.Stringer("role", actor.Role))
		return nil, ErrForbiddenRole
	}
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, ErrInvalidSubjectID
	}
	return u.repo.ListBySubjectID(ctx, subjectID)
}

// SubjectSummary serves the cached summary, reloading it when refresh is set.
func (u *LedgerUseCase) SubjectSummary(ctx context.Context, payerID, subjectID string, refresh bool) (entities.PaymentSummary, time.Time, error) {
	payerID = strings.TrimSpace(payerID)
	subjectID = strings.TrimSpace(subjectID)
	if payerID == "" {
		return entities.PaymentSummary{}, time.Time{}, ErrInvalidPayerID
	}
	if subjectID == "" {
		return entities.PaymentSummary{}, time.Time{}, ErrInvalidSubjectID
	}
	if u.cache == nil {
		return entities.PaymentSummary{}, time.Time{}, ErrSummaryUnavailable
	}
	if refresh {
		return u.cache.Refresh(ctx, payerID, subjectID)
	}
	return u.cache.Fetch(ctx, payerID, subjectID)
}

// CreateFromPlan appends the deposit and installment entries of the effective finance
// config for (EventID, ClubID, OrganizerID). All entries are written in one transaction.
func (u *LedgerUseCase) CreateFromPlan(ctx context.Context, actorUserID string, in CreatePlanInput) ([]entities.LedgerEntry, error) {
	in.PayerID = strings.TrimSpace(in.PayerID)
	in.SubjectID = strings.TrimSpace(in.SubjectID)
	in.EventID = strings.TrimSpace(in.EventID)
	u.log.Info("[ledger][usecase] create-from-plan start",
		zap.String("event_id", in.EventID), zap.String("payer_id", in.PayerID), zap.Int("installments", in.Installments))

	actor, err := loadProfile(ctx, u.profiles, actorUserID)
	if err != nil {
		return nil, err
	}
	if err := requireEntityAdmin(actor, in.ClubID, in.OrganizerID); err != nil {
		u.log.Warn("[ledger][usecase] create-from-plan forbidden", zap.String("user_id", actor.UserID), zap.Stringer("role", actor.Role))
		return nil, err
	}
	if in.PayerID == "" || in.EventID == "" {
		return nil, ErrInvalidPlanRequest
	}
	if u.configs == nil {
		return nil, errors.New("finance config usecase not configured")
	}

	cfg, err := u.configs.GetEffectiveConfig(ctx, in.EventID, in.ClubID, in.OrganizerID)
	if err != nil {
		return nil, err
	}
	// The resolved config may belong to the other entity in the request.
	if err := requireEntityAdmin(actor, cfg.OwnerEntityID); err != nil {
		u.log.Warn("[ledger][usecase] create-from-plan config owned by another entity",
			zap.String("user_id", actor.UserID), zap.String("owner_entity_id", cfg.OwnerEntityID))
		return nil, err
	}
	schedule, err := entities.PlanInstallments(cfg, in.Installments)
	if err != nil {
		return nil, err
	}
	if in.FirstDueDate != nil {
		schedule = schedule.WithMonthlyDueDates(*in.FirstDueDate)
	}

	currency := cfg.Currency
	if currency == "" {
		currency = u.currency
	}
	label := strings.TrimSpace(in.ConceptLabel)
	created := u.now()
	newEntry := func(seq int, concept string, inst entities.Installment) entities.LedgerEntry {
		return entities.LedgerEntry{
			ID:        uuid.NewString(),
			PayerID:   in.PayerID,
			SubjectID: in.SubjectID,
			EventID:   in.EventID,
			Concept:   withLabel(label, concept),
			Amount:    inst.Amount,
			Currency:  currency,
			Status:    entities.LedgerStatusPendiente,
			DueDate:   inst.DueDate,
			CreatedAt: created.Add(time.Duration(seq) * time.Millisecond),
		}
	}

	var out []entities.LedgerEntry
	if schedule.Deposit.IsPositive() {
		out = append(out, newEntry(0, depositConcept, entities.Installment{Amount: schedule.Deposit}))
	}
	for _, inst := range schedule.Installments {
		if !inst.Amount.IsPositive() {
			continue
		}
		concept := fmt.Sprintf("Cuota %d/%d", inst.Number, schedule.Count)
		out = append(out, newEntry(len(out), concept, inst))
	}
	if len(out) == 0 {
		return nil, ErrPlanHasNoCharges
	}

	if err := u.repo.CreateBatch(ctx, out); err != nil {
		u.log.Error("[ledger][usecase] create-from-plan persist failed", zap.String("event_id", in.EventID), zap.Error(err))
		return nil, err
	}
	if u.cache != nil && in.SubjectID != "" {
		if _, _, err := u.cache.Refresh(ctx, in.PayerID, in.SubjectID); err != nil {
			u.log.Warn("[ledger][usecase] summary refresh failed", zap.String("subject_id", in.SubjectID), zap.Error(err))
		}
	}
	u.log.Info("[ledger][usecase] create-from-plan success", zap.String("event_id", in.EventID), zap.Int("entries", len(out)))
	return out, nil
}

func withLabel(label, concept string) string {
	if label == "" {
		return concept
	}
	return label + " - " + concept
}

// NewPaymentSummaryLoader computes summaries straight from the ledger.
func NewPaymentSummaryLoader(repo interfaces.ILedgerRepository) interfaces.PaymentSummaryLoader {
	return func(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, error) {
		entries, err := repo.ListBySubjectID(ctx, subjectID)
		if err != nil {
			return entities.PaymentSummary{}, err
		}
		return entities.SummarizePayments(payerID, subjectID, entries), nil
	}
}
