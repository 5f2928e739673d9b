package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/offer"
)

type offerResponse struct {
	ID              uuid.UUID       `json:"id"`
	ListingID       uuid.UUID       `json:"listing_id"`
	BuyerID         uuid.UUID       `json:"buyer_id"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	Message         string          `json:"message,omitempty"`
	Status          offer.Status    `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	DealID          *uuid.UUID      `json:"deal_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// offerEnvelope wraps transition results as {"offer": {...}}.
type offerEnvelope struct {
	Offer offerResponse `json:"offer"`
}

func toResponse(o *offer.Offer) offerResponse {
	return offerResponse{
		ID:              o.ID,
		ListingID:       o.ListingID,
		BuyerID:         o.BuyerID,
		Price:           o.Price,
		Quantity:        o.Quantity,
		Message:         o.Message,
		Status:          o.Status,
		RejectionReason: o.RejectionReason,
		DealID:          o.DealID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toResponseList(offers []*offer.Offer) []offerResponse {
	resp := make([]offerResponse, len(offers))
	for i, o := range offers {
		resp[i] = toResponse(o)
	}

	return resp
}
