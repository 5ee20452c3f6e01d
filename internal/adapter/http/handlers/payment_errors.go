package handlers

import (
	"errors"
	"net/http"

	"teamflow_payments/internal/adapter/http/dto/request"
	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase"
	"teamflow_payments/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapPaymentError translates usecase errors into the codes the portals switch on.
func mapPaymentError(err error) *pkg.AppError {
	var validation *entities.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewValidationError("Invalid finance config", validation.Fields)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errUnauthorized
	case errors.Is(err, usecase.ErrForbiddenRole):
		return pkg.NewDomainErrorSimple("FORBIDDEN_ROLE", "Your role cannot perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbiddenEntity):
		return pkg.NewDomainErrorSimple("FORBIDDEN_ENTITY", "You do not administer this entity", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEntryNotOwned):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_OWNED", "This payment belongs to another family", http.StatusForbidden)
	case errors.Is(err, usecase.ErrLedgerEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryNotPayable), errors.Is(err, entities.ErrEntryNotPending):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_PAYABLE", "This payment is already settled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEntryAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "This payment has an invalid amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway error, try again later", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrInstallmentCountNotAllowed):
		return pkg.NewDomainErrorSimple("INSTALLMENT_COUNT_NOT_ALLOWED", "Installment count not allowed for this event", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanHasNoCharges):
		return pkg.NewDomainErrorSimple("PLAN_HAS_NO_CHARGES", "The finance plan has nothing to charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSummaryUnavailable):
		return pkg.NewDomainError("SUMMARY_UNAVAILABLE", "Payment summary is unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidEntryID),
		errors.Is(err, usecase.ErrInvalidPayerID),
		errors.Is(err, usecase.ErrInvalidSubjectID),
		errors.Is(err, usecase.ErrInvalidPlanRequest),
		errors.Is(err, usecase.ErrInvalidFinanceConfigKey),
		errors.Is(err, request.ErrInvalidFirstDueDate):
		return errInvalidRequest
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
