package usecase

import (
	"context"
	"errors"
	"testing"

	"teamflow_payments/internal/domain/entities"
	mock_interfaces "teamflow_payments/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var checkoutOpts = CheckoutOptions{
	Currency:   "EUR",
	SuccessURL: "https://app.test/pagos?success=true",
	CancelURL:  "https://app.test/pagos?canceled=true",
}

func familyProfile() entities.Profile {
	return entities.Profile{UserID: "user-1", Role: entities.RoleFamily, FamilyID: "fam-1"}
}

func pendingEntry() entities.LedgerEntry {
	return entities.LedgerEntry{
		ID:        "pago-1",
		PayerID:   "fam-1",
		SubjectID: "kid-1",
		Concept:   "Cuota 1/3",
		Amount:    decimal.RequireFromString("45.25"),
		Status:    entities.LedgerStatusPendiente,
	}
}

type checkoutDeps struct {
	ledger   *mock_interfaces.MockILedgerRepository
	profiles *mock_interfaces.MockIProfileRepository
	gateway  *mock_interfaces.MockICheckoutGateway
}

func newCheckoutDeps(t *testing.T) checkoutDeps {
	ctrl := gomock.NewController(t)
	return checkoutDeps{
		ledger:   mock_interfaces.NewMockILedgerRepository(ctrl),
		profiles: mock_interfaces.NewMockIProfileRepository(ctrl),
		gateway:  mock_interfaces.NewMockICheckoutGateway(ctrl),
	}
}

func (d checkoutDeps) useCase(log *zap.Logger) *CheckoutUseCase {
	return NewCheckoutUseCase(d.ledger, d.profiles, d.gateway, checkoutOpts, log)
}

func TestCheckoutUseCase_Initiate_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		entryID string
		setup   func(d checkoutDeps)
		wantErr error
	}{
		{
			name:    "unauthenticated",
			userID:  " ",
			entryID: "pago-1",
			setup:   func(d checkoutDeps) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "admin cannot pay",
			userID:  "admin-1",
			entryID: "pago-1",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "admin-1").Return(entities.Profile{UserID: "admin-1", Role: entities.RoleAdmin}, nil)
			},
			wantErr: ErrForbiddenRole,
		},
		{
			name:    "team without entry id is still a role failure",
			userID:  "team-1",
			entryID: "",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "team-1").Return(entities.Profile{UserID: "team-1", Role: entities.RoleTeam}, nil)
			},
			wantErr: ErrForbiddenRole,
		},
		{
			name:    "unknown profile",
			userID:  "ghost",
			entryID: "pago-1",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "ghost").Return(entities.Profile{}, nil)
			},
			wantErr: ErrForbiddenRole,
		},
		{
			name:    "family without family id",
			userID:  "user-1",
			entryID: "pago-1",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{UserID: "user-1", Role: entities.RoleFamily}, nil)
			},
			wantErr: ErrForbiddenRole,
		},
		{
			name:    "empty entry id",
			userID:  "user-1",
			entryID: "",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
			},
			wantErr: ErrInvalidEntryID,
		},
		{
			name:    "entry not found",
			userID:  "user-1",
			entryID: "pago-404",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
				d.ledger.EXPECT().GetByID(gomock.Any(), "pago-404").Return(entities.LedgerEntry{}, nil)
			},
			wantErr: ErrLedgerEntryNotFound,
		},
		{
			name:    "entry of another family",
			userID:  "user-1",
			entryID: "pago-1",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
				e := pendingEntry()
				e.PayerID = "fam-2"
				d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(e, nil)
			},
			wantErr: ErrEntryNotOwned,
		},
		{
			name:    "already paid",
			userID:  "user-1",
			entryID: "pago-1",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
				e := pendingEntry()
				e.Status = entities.LedgerStatusPagado
				d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(e, nil)
			},
			wantErr: ErrEntryNotPayable,
		},
		{
			name:    "amount rounds to zero cents",
			userID:  "user-1",
			entryID: "pago-1",
			setup: func(d checkoutDeps) {
				d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
				e := pendingEntry()
				e.Amount = decimal.RequireFromString("0.001")
				d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(e, nil)
			},
			wantErr: ErrInvalidEntryAmount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newCheckoutDeps(t)
			tc.setup(d)

			// No CreateCheckoutSession or AttachCheckoutSession expectations: any call fails the test.
			_, err := d.useCase(nil).Initiate(context.Background(), tc.entryID, tc.userID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCheckoutUseCase_Initiate_Success(t *testing.T) {
	d := newCheckoutDeps(t)
	d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
	d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(pendingEntry(), nil)
	d.gateway.EXPECT().Name().Return("stripe").AnyTimes()
	d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error) {
			if req.AmountMinor != 4525 {
				t.Fatalf("expected 4525 minor units, got %d", req.AmountMinor)
			}
			if req.Description != "Cuota 1/3" || req.Currency != "eur" {
				t.Fatalf("unexpected request %+v", req)
			}
			if req.Metadata[entities.MetadataEntryID] != "pago-1" ||
				req.Metadata[entities.MetadataSubjectID] != "kid-1" ||
				req.Metadata[entities.MetadataUserID] != "user-1" {
				t.Fatalf("unexpected metadata %+v", req.Metadata)
			}
			if req.SuccessURL != checkoutOpts.SuccessURL || req.CancelURL != checkoutOpts.CancelURL {
				t.Fatalf("unexpected redirect urls %+v", req)
			}
			return entities.CheckoutSession{ID: "cs_1", RedirectURL: "https://checkout.test/cs_1"}, nil
		})
	d.ledger.EXPECT().AttachCheckoutSession(gomock.Any(), "pago-1", "cs_1").Return(nil)

	res, err := d.useCase(nil).Initiate(context.Background(), "pago-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.URL != "https://checkout.test/cs_1" || res.SessionID != "cs_1" || res.EntryID != "pago-1" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestCheckoutUseCase_Initiate_TwiceSupersedesSession(t *testing.T) {
	d := newCheckoutDeps(t)
	d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil).Times(2)
	d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(pendingEntry(), nil).Times(2)
	d.gateway.EXPECT().Name().Return("stripe").AnyTimes()
	gomock.InOrder(
		d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "cs_1", RedirectURL: "https://checkout.test/cs_1"}, nil),
		d.ledger.EXPECT().AttachCheckoutSession(gomock.Any(), "pago-1", "cs_1").Return(nil),
		d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "cs_2", RedirectURL: "https://checkout.test/cs_2"}, nil),
		d.ledger.EXPECT().AttachCheckoutSession(gomock.Any(), "pago-1", "cs_2").Return(nil),
	)

	uc := d.useCase(nil)
	first, err := uc.Initiate(context.Background(), "pago-1", "user-1")
	if err != nil {
		t.Fatalf("first initiate: %v", err)
	}
	second, err := uc.Initiate(context.Background(), "pago-1", "user-1")
	if err != nil {
		t.Fatalf("second initiate: %v", err)
	}
	if first.URL == second.URL {
		t.Fatalf("expected a new session url, got %q twice", first.URL)
	}
}

func TestCheckoutUseCase_Initiate_GatewayErrors(t *testing.T) {
	tests := []struct {
		name       string
		gatewayErr error
		wantErr    error
	}{
		{name: "gateway down", gatewayErr: errors.New("connection refused"), wantErr: ErrPaymentGatewayFailure},
		{name: "missing secret", gatewayErr: entities.ErrGatewayNotConfigured, wantErr: ErrPaymentGatewayNotConfigured},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newCheckoutDeps(t)
			d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
			d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(pendingEntry(), nil)
			d.gateway.EXPECT().Name().Return("stripe").AnyTimes()
			d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, tc.gatewayErr)

			_, err := d.useCase(nil).Initiate(context.Background(), "pago-1", "user-1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCheckoutUseCase_Initiate_NilGateway(t *testing.T) {
	d := newCheckoutDeps(t)
	d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
	d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(pendingEntry(), nil)

	uc := NewCheckoutUseCase(d.ledger, d.profiles, nil, checkoutOpts, nil)
	_, err := uc.Initiate(context.Background(), "pago-1", "user-1")
	if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
		t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
	}
}

func TestCheckoutUseCase_Initiate_OrphanedSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	d := newCheckoutDeps(t)
	d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
	d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(pendingEntry(), nil)
	d.gateway.EXPECT().Name().Return("stripe").AnyTimes()
	d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "cs_9", RedirectURL: "https://checkout.test/cs_9"}, nil)
	d.ledger.EXPECT().AttachCheckoutSession(gomock.Any(), "pago-1", "cs_9").Return(errors.New("throttled"))

	res, err := d.useCase(zap.New(core)).Initiate(context.Background(), "pago-1", "user-1")
	if err != nil {
		t.Fatalf("expected url despite persist failure, got %v", err)
	}
	if res.URL != "https://checkout.test/cs_9" {
		t.Fatalf("unexpected url %q", res.URL)
	}

	orphans := logs.FilterMessage("[checkout][usecase] orphaned checkout session, manual reconciliation required").All()
	if len(orphans) != 1 {
		t.Fatalf("expected one orphan log entry, got %d", len(orphans))
	}
	fields := orphans[0].ContextMap()
	if orphans[0].Level != zapcore.ErrorLevel || fields["pago_id"] != "pago-1" || fields["session_id"] != "cs_9" {
		t.Fatalf("unexpected orphan log %+v", orphans[0])
	}
}

func TestCheckoutUseCase_Initiate_RepositoryErrors(t *testing.T) {
	t.Run("profile lookup fails", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Profile{}, errors.New("db"))

		_, err := d.useCase(nil).Initiate(context.Background(), "pago-1", "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("entry lookup fails", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(familyProfile(), nil)
		d.ledger.EXPECT().GetByID(gomock.Any(), "pago-1").Return(entities.LedgerEntry{}, errors.New("db"))

		_, err := d.useCase(nil).Initiate(context.Background(), "pago-1", "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
