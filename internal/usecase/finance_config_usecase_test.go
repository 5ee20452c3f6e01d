package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"teamflow_payments/internal/domain/entities"
	mock_interfaces "teamflow_payments/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func clubOwner() entities.Profile {
	return entities.Profile{UserID: "owner-1", Role: entities.RoleClubOwner, EntityID: "club-1"}
}

func validInput() FinanceConfigInput {
	return FinanceConfigInput{
		TotalPrice:          decimal.NewFromInt(500),
		Capacity:            40,
		AllowedInstallments: []int{3, 1, 2, 2},
		DepositEnabled:      true,
		DepositAmount:       decimal.NewFromInt(100),
	}
}

func TestFinanceConfigUseCase_SaveConfig(t *testing.T) {
	t.Run("club owner saves own config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFinanceConfigRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewFinanceConfigUseCase(repo, profiles, "EUR", nil)
		fixed := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		profiles.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(clubOwner(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg entities.FinanceConfig) (entities.FinanceConfig, error) {
			if len(cfg.InstallmentPlan.Allowed) != 3 || cfg.InstallmentPlan.Allowed[0] != 1 || cfg.InstallmentPlan.Allowed[2] != 3 {
				t.Fatalf("expected normalized plan, got %v", cfg.InstallmentPlan.Allowed)
			}
			if cfg.Currency != "eur" || cfg.UpdatedBy != "owner-1" || !cfg.UpdatedAt.Equal(fixed) {
				t.Fatalf("unexpected audit fields %+v", cfg)
			}
			return cfg, nil
		})

		cfg, err := uc.SaveConfig(context.Background(), "owner-1", "stage-1", "club-1", validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.PayableInstallmentBase().Equal(decimal.NewFromInt(400)) {
			t.Fatalf("expected base 400, got %s", cfg.PayableInstallmentBase())
		}
	})

	t.Run("validation errors are not persisted", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(in *FinanceConfigInput)
			field  string
		}{
			{name: "plan without 1", mutate: func(in *FinanceConfigInput) { in.AllowedInstallments = []int{2, 3} }, field: "installment_plan.allowed"},
			{name: "deposit equals price", mutate: func(in *FinanceConfigInput) { in.DepositAmount = decimal.NewFromInt(500) }, field: "deposit.amount"},
			{name: "negative capacity", mutate: func(in *FinanceConfigInput) { in.Capacity = -1 }, field: "capacity"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				repo := mock_interfaces.NewMockIFinanceConfigRepository(ctrl)
				profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
				profiles.EXPECT().GetByUserID(gomock.Any(), "owner-1").Return(clubOwner(), nil)

				in := validInput()
				tc.mutate(&in)
				_, err := NewFinanceConfigUseCase(repo, profiles, "eur", nil).SaveConfig(context.Background(), "owner-1", "stage-1", "club-1", in)

				var verr *entities.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if _, ok := verr.Fields[tc.field]; !ok {
					t.Fatalf("expected field %s in %v", tc.field, verr.Fields)
				}
			})
		}
	})

	t.Run("authorization", func(t *testing.T) {
		tests := []struct {
			name    string
			profile entities.Profile
			wantErr error
		}{
			{name: "other club", profile: entities.Profile{UserID: "u", Role: entities.RoleClubOwner, EntityID: "club-2"}, wantErr: ErrForbiddenEntity},
			{name: "organizer of other entity", profile: entities.Profile{UserID: "u", Role: entities.RoleTournamentOrganizer, EntityID: "org-1"}, wantErr: ErrForbiddenEntity},
			{name: "family", profile: entities.Profile{UserID: "u", Role: entities.RoleFamily, FamilyID: "fam-1"}, wantErr: ErrForbiddenRole},
			{name: "team", profile: entities.Profile{UserID: "u", Role: entities.RoleTeam}, wantErr: ErrForbiddenRole},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				repo := mock_interfaces.NewMockIFinanceConfigRepository(ctrl)
				profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
				profiles.EXPECT().GetByUserID(gomock.Any(), "u").Return(tc.profile, nil)

				_, err := NewFinanceConfigUseCase(repo, profiles, "eur", nil).SaveConfig(context.Background(), "u", "stage-1", "club-1", validInput())
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("admin saves any entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFinanceConfigRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		profiles.EXPECT().GetByUserID(gomock.Any(), "admin").Return(entities.Profile{UserID: "admin", Role: entities.RoleAdmin}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg entities.FinanceConfig) (entities.FinanceConfig, error) {
			return cfg, nil
		})

		if _, err := NewFinanceConfigUseCase(repo, profiles, "eur", nil).SaveConfig(context.Background(), "admin", "stage-1", "org-9", validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFinanceConfigUseCase_GetConfig(t *testing.T) {
	t.Run("default when never saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFinanceConfigRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), "stage-1", "club-1").Return(entities.FinanceConfig{}, nil)

		cfg, err := NewFinanceConfigUseCase(repo, nil, "eur", nil).GetConfig(context.Background(), "stage-1", "club-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.IsDefault || !cfg.InstallmentPlan.Allows(1) || cfg.Deposit.Enabled || cfg.Currency != "eur" {
			t.Fatalf("unexpected default %+v", cfg)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewFinanceConfigUseCase(nil, nil, "eur", nil).GetConfig(context.Background(), "stage-1", " ")
		if !errors.Is(err, ErrInvalidFinanceConfigKey) {
			t.Fatalf("expected ErrInvalidFinanceConfigKey, got %v", err)
		}
	})
}

func TestFinanceConfigUseCase_GetEffectiveConfig(t *testing.T) {
	clubCfg := entities.FinanceConfig{EventID: "stage-1", OwnerEntityID: "club-1", TotalPrice: decimal.NewFromInt(450)}
	orgCfg := entities.FinanceConfig{EventID: "stage-1", OwnerEntityID: "org-1", TotalPrice: decimal.NewFromInt(500)}

	tests := []struct {
		name      string
		setup     func(repo *mock_interfaces.MockIFinanceConfigRepository)
		wantOwner string
		wantDef   bool
	}{
		{
			name: "club override wins",
			setup: func(repo *mock_interfaces.MockIFinanceConfigRepository) {
				repo.EXPECT().Get(gomock.Any(), "stage-1", "club-1").Return(clubCfg, nil)
			},
			wantOwner: "club-1",
		},
		{
			name: "falls back to organizer",
			setup: func(repo *mock_interfaces.MockIFinanceConfigRepository) {
				repo.EXPECT().Get(gomock.Any(), "stage-1", "club-1").Return(entities.FinanceConfig{}, nil)
				repo.EXPECT().Get(gomock.Any(), "stage-1", "org-1").Return(orgCfg, nil)
			},
			wantOwner: "org-1",
		},
		{
			name: "default when neither saved",
			setup: func(repo *mock_interfaces.MockIFinanceConfigRepository) {
				repo.EXPECT().Get(gomock.Any(), "stage-1", "club-1").Return(entities.FinanceConfig{}, nil)
				repo.EXPECT().Get(gomock.Any(), "stage-1", "org-1").Return(entities.FinanceConfig{}, nil)
			},
			wantOwner: "club-1",
			wantDef:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIFinanceConfigRepository(ctrl)
			tc.setup(repo)

			cfg, err := NewFinanceConfigUseCase(repo, nil, "eur", nil).GetEffectiveConfig(context.Background(), "stage-1", "club-1", "org-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.OwnerEntityID != tc.wantOwner || cfg.IsDefault != tc.wantDef {
				t.Fatalf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestFinanceConfigUseCase_PlanInstallments(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIFinanceConfigRepository(ctrl)
	stored := entities.FinanceConfig{
		EventID:         "stage-1",
		OwnerEntityID:   "club-1",
		TotalPrice:      decimal.NewFromInt(500),
		InstallmentPlan: entities.InstallmentPlan{Allowed: []int{1, 2, 3}},
		Deposit:         entities.Deposit{Enabled: true, Amount: decimal.NewFromInt(100)},
	}
	repo.EXPECT().Get(gomock.Any(), "stage-1", "club-1").Return(stored, nil).Times(2)
	uc := NewFinanceConfigUseCase(repo, nil, "eur", nil)

	s, err := uc.PlanInstallments(context.Background(), "stage-1", "club-1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{s.Installments[0].Amount.StringFixed(2), s.Installments[1].Amount.StringFixed(2), s.Installments[2].Amount.StringFixed(2)}
	if got[0] != "133.33" || got[1] != "133.33" || got[2] != "133.34" {
		t.Fatalf("unexpected split %v", got)
	}

	if _, err := uc.PlanInstallments(context.Background(), "stage-1", "club-1", 5); !errors.Is(err, entities.ErrInstallmentCountNotAllowed) {
		t.Fatalf("expected ErrInstallmentCountNotAllowed, got %v", err)
	}
}
