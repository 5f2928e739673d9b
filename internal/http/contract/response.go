package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/contract"
)

type partyResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

type productResponse struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Commodity   string          `json:"commodity,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type offerResponse struct {
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Message   string          `json:"message"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}

type deliveryResponse struct {
	Type    string    `json:"type"`
	Address string    `json:"address"`
	Date    time.Time `json:"date"`
}

type financialsResponse struct {
	ProductValue decimal.Decimal   `json:"product_value"`
	PlatformFee  decimal.Decimal   `json:"platform_fee"`
	TransportFee decimal.Decimal   `json:"transport_fee"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	Formatted    map[string]string `json:"formatted"`
}

type contractResponse struct {
	ContractNumber    string             `json:"contract_number"`
	DealID            uuid.UUID          `json:"deal_id"`
	Status            string             `json:"status"`
	PaymentStatus     string             `json:"payment_status"`
	GeneratedAt       time.Time          `json:"generated_at"`
	Buyer             partyResponse      `json:"buyer"`
	Seller            partyResponse      `json:"seller"`
	Product           productResponse    `json:"product"`
	Offer             offerResponse      `json:"offer"`
	Delivery          deliveryResponse   `json:"delivery"`
	Financials        financialsResponse `json:"financials"`
	Terms             string             `json:"terms"`
	SpecialConditions string             `json:"special_conditions"`
}

func toParty(p contract.Party) partyResponse {
	return partyResponse{ID: p.ID, Name: p.Name, Email: p.Email}
}

func toResponse(c *contract.Contract) contractResponse {
	resp := contractResponse{
		ContractNumber: c.Number,
		DealID:         c.DealID,
		Status:         string(c.Status),
		PaymentStatus:  string(c.PaymentStatus),
		GeneratedAt:    c.GeneratedAt,
		Buyer:          toParty(c.Buyer),
		Seller:         toParty(c.Seller),
		Product: productResponse{
			Title:       c.Product.Title,
			Description: c.Product.Description,
			Commodity:   string(c.Product.Commodity),
			Quantity:    c.Product.Quantity,
			UnitPrice:   c.Product.UnitPrice,
		},
		Offer: offerResponse{
			Price:    c.Offer.Price,
			Quantity: c.Offer.Quantity,
			Message:  c.Offer.Message,
		},
		Delivery: deliveryResponse{
			Type:    string(c.Delivery.Type),
			Address: c.Delivery.Address,
			Date:    c.Delivery.Date,
		},
		Financials: financialsResponse{
			ProductValue: c.Amounts.ProductValue,
			PlatformFee:  c.Amounts.PlatformFee,
			TransportFee: c.Amounts.TransportFee,
			TotalAmount:  c.Amounts.Total,
			Formatted:    c.Formatted,
		},
		Terms:             c.Terms,
		SpecialConditions: c.SpecialConditions,
	}

	if !c.Offer.CreatedAt.IsZero() {
		createdAt := c.Offer.CreatedAt
		resp.Offer.CreatedAt = &createdAt
	}

	return resp
}
