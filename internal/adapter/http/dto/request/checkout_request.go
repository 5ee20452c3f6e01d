package request

import "strings"

// CheckoutRequest starts a hosted checkout for one ledger entry. A missing
// pago_id is reported by the usecase, after the caller's role is checked.
type CheckoutRequest struct {
	EntryID string `json:"pago_id"`
}

func (r CheckoutRequest) ResolveEntryID() string {
	return strings.TrimSpace(r.EntryID)
}
