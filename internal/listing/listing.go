package listing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/user"
)

var (
	ErrNotFound = errors.New("listing not found")
	ErrInvalid  = errors.New("invalid listing")
)

// Commodity is the kind of produce a listing sells.
type Commodity string

const (
	CommodityMaize     Commodity = "maize"
	CommodityWheat     Commodity = "wheat"
	CommodityBarley    Commodity = "barley"
	CommoditySunflower Commodity = "sunflower"
	CommoditySoya      Commodity = "soya"
	CommodityFeed      Commodity = "feed"
)

var Commodities = []Commodity{
	CommodityMaize,
	CommodityWheat,
	CommodityBarley,
	CommoditySunflower,
	CommoditySoya,
	CommodityFeed,
}

func (c Commodity) Valid() bool {
	switch c {
	case CommodityMaize, CommodityWheat, CommodityBarley, CommoditySunflower, CommoditySoya, CommodityFeed:
		return true
	}

	return false
}

// Listing is a seller's posted lot. Price is per unit of Quantity (usually tonnes).
type Listing struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Title       string
	Description string
	Commodity   Commodity
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserDirectory resolves the acting user and checks their capabilities.
type UserDirectory interface {
	Require(ctx context.Context, id uuid.UUID, c user.Capability) (*user.User, error)
}
