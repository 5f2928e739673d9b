package deal

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("deal not found")
	ErrInvalid           = errors.New("invalid deal")
	ErrInvalidStatus     = errors.New("invalid deal status")
	ErrInvalidTransition = errors.New("invalid deal status transition")
	ErrNoEligibleOffer   = errors.New("no eligible offer")
)

type Status string

const (
	StatusConnected         Status = "connected"
	StatusTransportQuoted   Status = "transport-quoted"
	StatusTransportSelected Status = "transport-selected"
	StatusFacilitated       Status = "facilitated"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusConnected:         {StatusTransportQuoted, StatusFacilitated, StatusCancelled},
	StatusTransportQuoted:   {StatusTransportSelected, StatusFacilitated, StatusCancelled},
	StatusTransportSelected: {StatusFacilitated, StatusCancelled},
	StatusFacilitated:       {StatusCompleted, StatusCancelled},
	StatusCompleted:         nil,
	StatusCancelled:         nil,
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Closed reports whether the deal has reached a terminal status.
func (s Status) Closed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether a deal may move from one status to another.
// Writing the current status again is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return from.Valid()
	}

	return slices.Contains(transitions[from], to)
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentOverdue PaymentStatus = "overdue"
)

type DeliveryType string

const (
	DeliveryExFarm    DeliveryType = "ex-farm"
	DeliveryDelivered DeliveryType = "delivered"
)

func (t DeliveryType) Valid() bool {
	return t == DeliveryExFarm || t == DeliveryDelivered
}

// PlatformFeeRate is charged per unit of quantity, in rand.
const PlatformFeeRate = 1

func PlatformFee(quantity decimal.Decimal) decimal.Decimal {
	return quantity.Mul(decimal.NewFromInt(PlatformFeeRate))
}

// Total is price × quantity plus the platform fee and the transport fee, if any.
func Total(price, quantity, platformFee decimal.Decimal, transportFee *decimal.Decimal) decimal.Decimal {
	total := price.Mul(quantity).Add(platformFee)
	if transportFee != nil {
		total = total.Add(*transportFee)
	}

	return total
}

type Deal struct {
	ID                uuid.UUID
	OfferID           uuid.UUID
	ListingID         uuid.UUID
	BuyerID           uuid.UUID
	SellerID          uuid.UUID
	TransporterID     *uuid.UUID
	FinalPrice        decimal.Decimal
	Quantity          decimal.Decimal
	DeliveryType      DeliveryType
	DeliveryAddress   string
	DeliveryDate      time.Time
	Status            Status
	PaymentStatus     PaymentStatus
	PlatformFee       decimal.Decimal
	TransportFee      *decimal.Decimal
	TotalAmount       decimal.Decimal
	Terms             string
	SpecialConditions string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductValue is the goods value without fees.
func (d *Deal) ProductValue() decimal.Decimal {
	return d.FinalPrice.Mul(d.Quantity)
}

// EligibleOffer is an accepted offer that has not been converted yet, joined
// with the seller of its listing.
type EligibleOffer struct {
	OfferID   uuid.UUID
	ListingID uuid.UUID
	BuyerID   uuid.UUID
	SellerID  uuid.UUID
	Price     decimal.Decimal
	Quantity  decimal.Decimal
}
