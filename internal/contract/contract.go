package contract

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/offer"
	"github.com/farmfeed/farmfeed/internal/user"
)

const (
	UnknownBuyer   = "Unknown Buyer"
	UnknownSeller  = "Unknown Seller"
	UnknownProduct = "Unknown Product"
)

type Party struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type Product struct {
	Title       string
	Description string
	Commodity   listing.Commodity
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// OfferTerms is empty when the originating offer no longer exists.
type OfferTerms struct {
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	Message   string
	CreatedAt time.Time
}

type Delivery struct {
	Type    deal.DeliveryType
	Address string
	Date    time.Time
}

type Amounts struct {
	ProductValue decimal.Decimal
	PlatformFee  decimal.Decimal
	TransportFee decimal.Decimal
	Total        decimal.Decimal
}

// Contract is a read-only summary of a deal and the parties to it.
type Contract struct {
	Number            string
	DealID            uuid.UUID
	Status            deal.Status
	PaymentStatus     deal.PaymentStatus
	GeneratedAt       time.Time
	Buyer             Party
	Seller            Party
	Product           Product
	Offer             OfferTerms
	Delivery          Delivery
	Amounts           Amounts
	Formatted         map[string]string
	Terms             string
	SpecialConditions string
}

// Number derives the contract number from a deal id, e.g. FF-3F2A9C1B.
func Number(dealID uuid.UUID) string {
	return "FF-" + strings.ToUpper(dealID.String()[:8])
}

// FormatZAR renders an amount as "ZAR 1,020.00". The digits come from the
// decimal itself, never from a float.
func FormatZAR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if rest, ok := strings.CutPrefix(fixed, "-"); ok {
		sign, fixed = "-", rest
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return currency.ZAR.String() + " " + sign + b.String() + "." + frac
}

type Deals interface {
	Get(ctx context.Context, id uuid.UUID) (*deal.Deal, error)
	MarkFacilitated(ctx context.Context, id uuid.UUID) (*deal.Deal, error)
}

type Offers interface {
	Get(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
}

type Listings interface {
	Get(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type Users interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
}
