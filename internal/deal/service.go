package deal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 10

	defaultDeliveryLead = 7 * 24 * time.Hour
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=deal
type Repository interface {
	GetDeal(ctx context.Context, id uuid.UUID) (*Deal, error)
	ListDeals(ctx context.Context, filter ListFilter) ([]*Deal, error)
	// UpdateDealStatus persists status, transport fee and total, provided the
	// stored status still equals from.
	UpdateDealStatus(ctx context.Context, d *Deal, from Status) error

	BeginConversion(ctx context.Context) (ConversionTx, error)
}

type ConversionTx interface {
	// FindEligibleOffer locks one accepted, unconverted offer. A nil offerID
	// picks the oldest. Returns ErrNoEligibleOffer when there is none.
	FindEligibleOffer(ctx context.Context, offerID *uuid.UUID) (*EligibleOffer, error)
	CreateDeal(ctx context.Context, d *Deal) error
	LinkOffer(ctx context.Context, offerID, dealID uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	strict bool
	now    func() time.Time
}

// NewService returns a deal service. With strict unset, status updates outside
// the transition table are allowed and logged.
func NewService(repo Repository, strict bool) *Service {
	return &Service{
		repo:   repo,
		strict: strict,
		now:    time.Now,
	}
}

type CreateParams struct {
	OfferID           *uuid.UUID
	DeliveryType      DeliveryType
	DeliveryAddress   string
	DeliveryDate      *time.Time
	Terms             string
	SpecialConditions string
}

type ListFilter struct {
	BuyerID  *uuid.UUID
	SellerID *uuid.UUID
	Status   *Status
	Limit    int
}

// CreateFromOffer converts an accepted offer into a deal. It returns a nil
// deal and no error when no offer is eligible.
func (s *Service) CreateFromOffer(ctx context.Context, params CreateParams) (*Deal, error) {
	if params.DeliveryType == "" {
		params.DeliveryType = DeliveryExFarm
	}

	if !params.DeliveryType.Valid() {
		return nil, fmt.Errorf("%w: unknown delivery type %q", ErrInvalid, params.DeliveryType)
	}

	conv, err := s.repo.BeginConversion(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin conversion: %w", err)
	}
	defer conv.Rollback()

	eo, err := conv.FindEligibleOffer(ctx, params.OfferID)
	if err != nil {
		if errors.Is(err, ErrNoEligibleOffer) {
			return nil, nil
		}

		return nil, fmt.Errorf("find eligible offer: %w", err)
	}

	deliveryDate := s.now().Add(defaultDeliveryLead)
	if params.DeliveryDate != nil {
		deliveryDate = *params.DeliveryDate
	}

	fee := PlatformFee(eo.Quantity)

	d := &Deal{
		OfferID:           eo.OfferID,
		ListingID:         eo.ListingID,
		BuyerID:           eo.BuyerID,
		SellerID:          eo.SellerID,
		FinalPrice:        eo.Price,
		Quantity:          eo.Quantity,
		DeliveryType:      params.DeliveryType,
		DeliveryAddress:   strings.TrimSpace(params.DeliveryAddress),
		DeliveryDate:      deliveryDate,
		Status:            StatusConnected,
		PaymentStatus:     PaymentPending,
		PlatformFee:       fee,
		TotalAmount:       Total(eo.Price, eo.Quantity, fee, nil),
		Terms:             params.Terms,
		SpecialConditions: params.SpecialConditions,
	}

	if err := conv.CreateDeal(ctx, d); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	if err := conv.LinkOffer(ctx, eo.OfferID, d.ID); err != nil {
		return nil, fmt.Errorf("link offer: %w", err)
	}

	if err := conv.Commit(); err != nil {
		return nil, fmt.Errorf("commit conversion: %w", err)
	}

	return d, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Deal, error) {
	return s.repo.GetDeal(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Deal, error) {
	if filter.Limit <= 0 || filter.Limit > DefaultListLimit {
		filter.Limit = DefaultListLimit
	}

	return s.repo.ListDeals(ctx, filter)
}

// UpdateStatus moves a deal to status. A non-nil transportFee is stored and
// the total recomputed.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, transportFee *decimal.Decimal) (*Deal, error) {
	return s.transition(ctx, id, status, transportFee, s.strict)
}

// MarkFacilitated always follows the transition table, whatever the service mode.
func (s *Service) MarkFacilitated(ctx context.Context, id uuid.UUID) (*Deal, error) {
	return s.transition(ctx, id, StatusFacilitated, nil, true)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to Status, transportFee *decimal.Decimal, strict bool) (*Deal, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}

	if transportFee != nil && transportFee.IsNegative() {
		return nil, fmt.Errorf("%w: transport fee must not be negative", ErrInvalid)
	}

	d, err := s.repo.GetDeal(ctx, id)
	if err != nil {
		return nil, err
	}

	from := d.Status
	if !CanTransition(from, to) {
		if strict {
			return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}

		slog.WarnContext(ctx, "deal status change outside transition table",
			"deal_id", id,
			"from", from,
			"to", to,
		)
	}

	d.Status = to
	if transportFee != nil {
		d.TransportFee = transportFee
		d.TotalAmount = Total(d.FinalPrice, d.Quantity, d.PlatformFee, d.TransportFee)
	}

	if err := s.repo.UpdateDealStatus(ctx, d, from); err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			return nil, fmt.Errorf("%w: deal changed concurrently", ErrInvalidTransition)
		}

		return nil, fmt.Errorf("update deal status: %w", err)
	}

	return d, nil
}
