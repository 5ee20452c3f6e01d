package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCreatePlanRequest_ToInput(t *testing.T) {
	t.Run("parses due date and trims ids", func(t *testing.T) {
		in, err := CreatePlanRequest{PayerID: " fam-1 ", EventID: "ev-1", Installments: 3, FirstDueDate: "2026-09-01"}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.PayerID != "fam-1" || in.Installments != 3 {
			t.Fatalf("unexpected input: %+v", in)
		}
		if in.FirstDueDate == nil || !in.FirstDueDate.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected due date: %v", in.FirstDueDate)
		}
	})

	t.Run("no due date", func(t *testing.T) {
		in, err := CreatePlanRequest{PayerID: "fam-1", EventID: "ev-1", Installments: 1}.ToInput()
		if err != nil || in.FirstDueDate != nil {
			t.Fatalf("unexpected result: %+v %v", in, err)
		}
	})

	t.Run("bad due date", func(t *testing.T) {
		if _, err := (CreatePlanRequest{FirstDueDate: "01/09/2026"}).ToInput(); err != ErrInvalidFirstDueDate {
			t.Fatalf("expected ErrInvalidFirstDueDate, got %v", err)
		}
	})
}

func TestFinanceConfigRequest_AcceptsNumbersAndStrings(t *testing.T) {
	var r FinanceConfigRequest
	body := `{"total_price":400,"capacity":20,"allowed_installments":[3,1],"deposit_enabled":true,"deposit_amount":"100.50"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if !in.TotalPrice.Equal(decimal.NewFromInt(400)) || !in.DepositAmount.Equal(decimal.RequireFromString("100.5")) {
		t.Fatalf("unexpected amounts: %+v", in)
	}
	if len(in.AllowedInstallments) != 2 || !in.DepositEnabled {
		t.Fatalf("unexpected input: %+v", in)
	}
}
