package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamflow_payments/internal/adapter/http/handlers/mocks"
	"teamflow_payments/internal/adapter/http/middleware"
	"teamflow_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	}
}

func decodeCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body.Code
}

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ICheckoutUseCase, userID string) *gin.Engine {
		h := NewCheckoutHandler(uc, nil)
		r := gin.New()
		r.POST("/v1/checkout", asUser(userID), h.CreateCheckout)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		w := post(newRouter(uc, "user-1"), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank pago_id is left to the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().Initiate(gomock.Any(), "", "user-1").Return(usecase.CheckoutResult{}, usecase.ErrInvalidEntryID)

		w := post(newRouter(uc, "user-1"), `{"pago_id":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body from a non-payer is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().Initiate(gomock.Any(), "", "team-user").Return(usecase.CheckoutResult{}, usecase.ErrForbiddenRole).Times(2)

		for _, body := range []string{"", "{}"} {
			w := post(newRouter(uc, "team-user"), body)
			if w.Code != http.StatusForbidden {
				t.Fatalf("body %q: expected 403, got %d", body, w.Code)
			}
			if got := decodeCode(t, w); got != "FORBIDDEN_ROLE" {
				t.Fatalf("body %q: expected FORBIDDEN_ROLE, got %s", body, got)
			}
		}
	})

	t.Run("no authenticated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		w := post(newRouter(uc, ""), `{"pago_id":"pago-1"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	errorCases := []struct {
		err      error
		wantCode int
		wantBody string
	}{
		{usecase.ErrForbiddenRole, http.StatusForbidden, "FORBIDDEN_ROLE"},
		{usecase.ErrEntryNotOwned, http.StatusForbidden, "ENTRY_NOT_OWNED"},
		{usecase.ErrLedgerEntryNotFound, http.StatusNotFound, "ENTRY_NOT_FOUND"},
		{usecase.ErrEntryNotPayable, http.StatusBadRequest, "ENTRY_NOT_PAYABLE"},
		{usecase.ErrInvalidEntryAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		{fmt.Errorf("%w: stripe down", usecase.ErrPaymentGatewayFailure), http.StatusInternalServerError, "PAYMENT_GATEWAY_ERROR"},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusInternalServerError, "PAYMENT_GATEWAY_NOT_CONFIGURED"},
	}
	for _, tc := range errorCases {
		t.Run("maps "+tc.wantBody, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			uc.EXPECT().Initiate(gomock.Any(), "pago-1", "user-1").Return(usecase.CheckoutResult{}, tc.err)

			w := post(newRouter(uc, "user-1"), `{"pago_id":"pago-1"}`)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if got := decodeCode(t, w); got != tc.wantBody {
				t.Fatalf("expected code %s, got %s", tc.wantBody, got)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().Initiate(gomock.Any(), "pago-1", "user-1").
			Return(usecase.CheckoutResult{EntryID: "pago-1", SessionID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil)

		w := post(newRouter(uc, "user-1"), `{"pago_id":" pago-1 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["url"] != "https://checkout.stripe.com/c/cs_1" {
			t.Fatalf("unexpected url %q", body["url"])
		}
	})
}
