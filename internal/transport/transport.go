package transport

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/user"
)

var (
	ErrRequestNotFound = errors.New("transport request not found")
	ErrDealNotFound    = errors.New("deal not found")
	ErrDealClosed      = errors.New("deal is closed")
	ErrInvalid         = errors.New("invalid transport request")
)

// Currency is the only currency quotes are accepted in.
const Currency = "ZAR"

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestQuoted    RequestStatus = "quoted"
	RequestCancelled RequestStatus = "cancelled"
)

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

// ProductDetails is copied from the deal and its listing when transport is
// requested, so later edits to the listing do not change what was quoted on.
type ProductDetails struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Quantity     decimal.Decimal   `json:"quantity"`
	DeliveryType deal.DeliveryType `json:"delivery_type"`
}

type Request struct {
	ID                 uuid.UUID
	DealID             uuid.UUID
	RequesterID        uuid.UUID
	OriginAddress      string
	DestinationAddress string
	ProductDetails     ProductDetails
	PickupDate         time.Time
	DeliveryDate       time.Time
	Status             RequestStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Quote struct {
	ID                    uuid.UUID
	RequestID             uuid.UUID
	TransporterID         uuid.UUID
	Price                 decimal.Decimal
	Currency              string
	EstimatedDeliveryDate time.Time
	Terms                 string
	Status                QuoteStatus
	CreatedAt             time.Time
}

// LockedDeal is the row-locked view of a deal taken while a request is created.
type LockedDeal struct {
	ID           uuid.UUID
	Status       deal.Status
	Title        string
	Description  string
	Quantity     decimal.Decimal
	DeliveryType deal.DeliveryType
}

type UserDirectory interface {
	Require(ctx context.Context, id uuid.UUID, c user.Capability) (*user.User, error)
}
