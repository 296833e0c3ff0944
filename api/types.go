// Package api - Request and response envelopes
package api

import (
	"practice-pricing/core/types"
)

// QuoteResponse is the quoting endpoint response
type QuoteResponse struct {
	// ID identifies this quote computation for client-side correlation;
	// nothing is persisted under it
	ID string `json:"id"`

	ModelA         *types.PricingModel  `json:"model_a"`
	ModelB         *types.PricingModel  `json:"model_b"`
	Recommendation types.Recommendation `json:"recommendation"`
}

// EstimateRequest asks for a monthly transaction volume estimate
type EstimateRequest struct {
	Turnover      string         `json:"turnover"`
	Industry      types.Industry `json:"industry"`
	VatRegistered bool           `json:"vat_registered"`
}

// EstimateResponse carries the estimated volume
type EstimateResponse struct {
	Estimated int64 `json:"estimated"`
}

// ComponentsResponse lists the tenant's active catalog
type ComponentsResponse struct {
	Components []types.ServiceComponent `json:"components"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable error
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
