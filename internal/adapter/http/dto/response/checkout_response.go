package response

import "teamflow_payments/internal/usecase"

type CheckoutResponse struct {
	URL string `json:"url"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{URL: r.URL}
}

// WebhookAckResponse is returned for every accepted delivery, including ignored ones.
type WebhookAckResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome,omitempty"`
}

func FromWebhookResult(r usecase.WebhookResult) WebhookAckResponse {
	return WebhookAckResponse{Received: true, Outcome: string(r.Outcome)}
}
