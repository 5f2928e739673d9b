package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/transport"
)

type requestResponse struct {
	ID                 uuid.UUID                `json:"id"`
	DealID             uuid.UUID                `json:"deal_id"`
	RequesterID        uuid.UUID                `json:"requester_id"`
	OriginAddress      string                   `json:"origin_address"`
	DestinationAddress string                   `json:"destination_address"`
	ProductDetails     transport.ProductDetails `json:"product_details"`
	PickupDate         time.Time                `json:"pickup_date"`
	DeliveryDate       time.Time                `json:"delivery_date"`
	Status             transport.RequestStatus  `json:"status"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

type quoteResponse struct {
	ID                    uuid.UUID             `json:"id"`
	RequestID             uuid.UUID             `json:"request_id"`
	TransporterID         uuid.UUID             `json:"transporter_id"`
	Price                 decimal.Decimal       `json:"price"`
	Currency              string                `json:"currency"`
	EstimatedDeliveryDate time.Time             `json:"estimated_delivery_date"`
	Terms                 string                `json:"terms"`
	Status                transport.QuoteStatus `json:"status"`
	CreatedAt             time.Time             `json:"created_at"`
}

func toRequestResponse(r *transport.Request) requestResponse {
	return requestResponse{
		ID:                 r.ID,
		DealID:             r.DealID,
		RequesterID:        r.RequesterID,
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		ProductDetails:     r.ProductDetails,
		PickupDate:         r.PickupDate,
		DeliveryDate:       r.DeliveryDate,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func toQuoteResponse(q *transport.Quote) quoteResponse {
	return quoteResponse{
		ID:                    q.ID,
		RequestID:             q.RequestID,
		TransporterID:         q.TransporterID,
		Price:                 q.Price,
		Currency:              q.Currency,
		EstimatedDeliveryDate: q.EstimatedDeliveryDate,
		Terms:                 q.Terms,
		Status:                q.Status,
		CreatedAt:             q.CreatedAt,
	}
}
