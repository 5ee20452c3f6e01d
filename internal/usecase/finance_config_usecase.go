package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidFinanceConfigKey = errors.New("event_id and owner entity id are required")

// FinanceConfigInput is the writable part of a FinanceConfig.
type FinanceConfigInput struct {
	TotalPrice          decimal.Decimal
	Capacity            int
	Currency            string
	AllowedInstallments []int
	DepositEnabled      bool
	DepositAmount       decimal.Decimal
}

type IFinanceConfigUseCase interface {
	SaveConfig(ctx context.Context, actorUserID, eventID, ownerEntityID string, in FinanceConfigInput) (entities.FinanceConfig, error)
	GetConfig(ctx context.Context, eventID, ownerEntityID string) (entities.FinanceConfig, error)
	GetEffectiveConfig(ctx context.Context, eventID, clubID, organizerID string) (entities.FinanceConfig, error)
	PlanInstallments(ctx context.Context, eventID, ownerEntityID string, count int) (entities.InstallmentSchedule, error)
}

type FinanceConfigUseCase struct {
	repo            interfaces.IFinanceConfigRepository
	profiles        interfaces.IProfileRepository
	defaultCurrency string
	log             *zap.Logger
	now             func() time.Time
}

var _ IFinanceConfigUseCase = (*FinanceConfigUseCase)(nil)

func NewFinanceConfigUseCase(repo interfaces.IFinanceConfigRepository, profiles interfaces.IProfileRepository, defaultCurrency string, log *zap.Logger) *FinanceConfigUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FinanceConfigUseCase{
		repo:            repo,
		profiles:        profiles,
		defaultCurrency: strings.ToLower(defaultCurrency),
		log:             log,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// SaveConfig overwrites the (eventID, ownerEntityID) config after authorizing the
// actor and validating every field. Nothing is written when validation fails.
func (u *FinanceConfigUseCase) SaveConfig(ctx context.Context, actorUserID, eventID, ownerEntityID string, in FinanceConfigInput) (entities.FinanceConfig, error) {
	eventID = strings.TrimSpace(eventID)
	ownerEntityID = strings.TrimSpace(ownerEntityID)
	u.log.Info("[finance-config][usecase] save start",
		zap.String("event_id", eventID), zap.String("owner_entity_id", ownerEntityID), zap.String("user_id", actorUserID))

	actor, err := loadProfile(ctx, u.profiles, actorUserID)
	if err != nil {
		return entities.FinanceConfig{}, err
	}
	if err := requireEntityAdmin(actor, ownerEntityID); err != nil {
		u.log.Warn("[finance-config][usecase] save forbidden",
			zap.String("user_id", actor.UserID), zap.Stringer("role", actor.Role), zap.String("owner_entity_id", ownerEntityID))
		return entities.FinanceConfig{}, err
	}

	currency := strings.ToLower(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = u.defaultCurrency
	}
	cfg := entities.FinanceConfig{
		EventID:         eventID,
		OwnerEntityID:   ownerEntityID,
		TotalPrice:      in.TotalPrice,
		Capacity:        in.Capacity,
		Currency:        currency,
		InstallmentPlan: entities.InstallmentPlan{Allowed: entities.NormalizeInstallments(in.AllowedInstallments)},
		Deposit:         entities.Deposit{Enabled: in.DepositEnabled, Amount: in.DepositAmount},
		UpdatedBy:       actor.UserID,
		UpdatedAt:       u.now(),
	}
	if err := cfg.Validate(); err != nil {
		u.log.Info("[finance-config][usecase] save rejected", zap.String("event_id", eventID), zap.Error(err))
		return entities.FinanceConfig{}, err
	}

	saved, err := u.repo.Save(ctx, cfg)
	if err != nil {
		u.log.Error("[finance-config][usecase] save failed", zap.String("event_id", eventID), zap.Error(err))
		return entities.FinanceConfig{}, err
	}
	u.log.Info("[finance-config][usecase] save success", zap.String("event_id", eventID), zap.String("owner_entity_id", ownerEntityID))
	return saved, nil
}

// GetConfig returns the stored config or the default when nothing was saved.
func (u *FinanceConfigUseCase) GetConfig(ctx context.Context, eventID, ownerEntityID string) (entities.FinanceConfig, error) {
	eventID = strings.TrimSpace(eventID)
	ownerEntityID = strings.TrimSpace(ownerEntityID)
	if eventID == "" || ownerEntityID == "" {
		return entities.FinanceConfig{}, ErrInvalidFinanceConfigKey
	}

	cfg, err := u.repo.Get(ctx, eventID, ownerEntityID)
	if err != nil {
		return entities.FinanceConfig{}, err
	}
	if cfg.EventID == "" {
		return u.defaultConfig(eventID, ownerEntityID), nil
	}
	return cfg, nil
}

// GetEffectiveConfig resolves per-club pricing: the club's own config wins over the
// organizer's, and the default applies when neither was saved.
func (u *FinanceConfigUseCase) GetEffectiveConfig(ctx context.Context, eventID, clubID, organizerID string) (entities.FinanceConfig, error) {
	eventID = strings.TrimSpace(eventID)
	clubID = strings.TrimSpace(clubID)
	organizerID = strings.TrimSpace(organizerID)
	if eventID == "" || (clubID == "" && organizerID == "") {
		return entities.FinanceConfig{}, ErrInvalidFinanceConfigKey
	}

	for _, owner := range []string{clubID, organizerID} {
		if owner == "" {
			continue
		}
		cfg, err := u.repo.Get(ctx, eventID, owner)
		if err != nil {
			return entities.FinanceConfig{}, err
		}
		if cfg.EventID != "" {
			return cfg, nil
		}
	}

	owner := clubID
	if owner == "" {
		owner = organizerID
	}
	return u.defaultConfig(eventID, owner), nil
}

func (u *FinanceConfigUseCase) PlanInstallments(ctx context.Context, eventID, ownerEntityID string, count int) (entities.InstallmentSchedule, error) {
	cfg, err := u.GetConfig(ctx, eventID, ownerEntityID)
	if err != nil {
		return entities.InstallmentSchedule{}, err
	}
	return entities.PlanInstallments(cfg, count)
}

func (u *FinanceConfigUseCase) defaultConfig(eventID, ownerEntityID string) entities.FinanceConfig {
	cfg := entities.DefaultFinanceConfig(eventID, ownerEntityID)
	cfg.Currency = u.defaultCurrency
	return cfg
}
