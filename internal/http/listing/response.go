package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/listing"
)

type listingResponse struct {
	ID          uuid.UUID         `json:"id"`
	SellerID    uuid.UUID         `json:"seller_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Commodity   listing.Commodity `json:"commodity"`
	Price       decimal.Decimal   `json:"price"`
	Quantity    decimal.Decimal   `json:"quantity"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type importResponse struct {
	Profile  string            `json:"profile"`
	Charset  string            `json:"charset"`
	Imported int               `json:"imported"`
	Listings []listingResponse `json:"listings"`
}

func toResponse(l *listing.Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		SellerID:    l.SellerID,
		Title:       l.Title,
		Description: l.Description,
		Commodity:   l.Commodity,
		Price:       l.Price,
		Quantity:    l.Quantity,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toResponseList(ls []*listing.Listing) []listingResponse {
	resp := make([]listingResponse, len(ls))
	for i, l := range ls {
		resp[i] = toResponse(l)
	}

	return resp
}
