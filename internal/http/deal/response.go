package deal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/deal"
)

type dealResponse struct {
	ID                uuid.UUID          `json:"id"`
	OfferID           uuid.UUID          `json:"offer_id"`
	ListingID         uuid.UUID          `json:"listing_id"`
	BuyerID           uuid.UUID          `json:"buyer_id"`
	SellerID          uuid.UUID          `json:"seller_id"`
	TransporterID     *uuid.UUID         `json:"transporter_id"`
	FinalPrice        decimal.Decimal    `json:"final_price"`
	Quantity          decimal.Decimal    `json:"quantity"`
	DeliveryType      deal.DeliveryType  `json:"delivery_type"`
	DeliveryAddress   string             `json:"delivery_address"`
	DeliveryDate      time.Time          `json:"delivery_date"`
	Status            deal.Status        `json:"status"`
	PaymentStatus     deal.PaymentStatus `json:"payment_status"`
	PlatformFee       decimal.Decimal    `json:"platform_fee"`
	TransportFee      *decimal.Decimal   `json:"transport_fee"`
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	Terms             string             `json:"terms"`
	SpecialConditions string             `json:"special_conditions"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func toResponse(d *deal.Deal) dealResponse {
	return dealResponse{
		ID:                d.ID,
		OfferID:           d.OfferID,
		ListingID:         d.ListingID,
		BuyerID:           d.BuyerID,
		SellerID:          d.SellerID,
		TransporterID:     d.TransporterID,
		FinalPrice:        d.FinalPrice,
		Quantity:          d.Quantity,
		DeliveryType:      d.DeliveryType,
		DeliveryAddress:   d.DeliveryAddress,
		DeliveryDate:      d.DeliveryDate,
		Status:            d.Status,
		PaymentStatus:     d.PaymentStatus,
		PlatformFee:       d.PlatformFee,
		TransportFee:      d.TransportFee,
		TotalAmount:       d.TotalAmount,
		Terms:             d.Terms,
		SpecialConditions: d.SpecialConditions,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toResponseList(deals []*deal.Deal) []dealResponse {
	resp := make([]dealResponse, len(deals))
	for i, d := range deals {
		resp[i] = toResponse(d)
	}

	return resp
}
