package offer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/user"
)

var (
	ErrNotFound   = errors.New("offer not found")
	ErrNotPending = errors.New("offer is not pending")
	ErrInvalid    = errors.New("invalid offer")
)

// Status is the lifecycle state of an offer. Only pending offers can move;
// accepted offers are later converted into deals.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}

	return false
}

// Offer is a buyer's proposed price and quantity against a listing.
type Offer struct {
	ID              uuid.UUID
	ListingID       uuid.UUID
	BuyerID         uuid.UUID
	Price           decimal.Decimal
	Quantity        decimal.Decimal
	Message         string
	Status          Status
	RejectionReason string
	DealID          *uuid.UUID // Set once the offer is converted
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type UserDirectory interface {
	Require(ctx context.Context, id uuid.UUID, c user.Capability) (*user.User, error)
}

type Listings interface {
	Get(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}
