package offer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/user"
)

const DefaultListLimit = 10

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=offer
type Repository interface {
	CreateOffer(ctx context.Context, o *Offer) error
	GetOffer(ctx context.Context, id uuid.UUID) (*Offer, error)
	ListOffers(ctx context.Context, filter ListFilter) ([]*Offer, error)
	// TransitionOffer persists o.Status and o.RejectionReason only if the stored
	// offer is still pending, returning ErrNotPending otherwise.
	TransitionOffer(ctx context.Context, o *Offer) error
}

type Service struct {
	repo     Repository
	users    UserDirectory
	listings Listings
	notifier Notifier
}

func NewService(repo Repository, users UserDirectory, listings Listings, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		listings: listings,
		notifier: notifier,
	}
}

type CreateParams struct {
	ListingID uuid.UUID
	BuyerID   uuid.UUID
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	Message   string
}

type ListFilter struct {
	ListingID *uuid.UUID
	BuyerID   *uuid.UUID
	Status    *Status
	Limit     int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Offer, error) {
	if !params.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalid)
	}

	if !params.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalid)
	}

	if _, err := s.users.Require(ctx, params.BuyerID, user.CapabilityBuy); err != nil {
		return nil, err
	}

	l, err := s.listings.Get(ctx, params.ListingID)
	if err != nil {
		return nil, err
	}

	if l.SellerID == params.BuyerID {
		return nil, fmt.Errorf("%w: cannot make an offer on your own listing", ErrInvalid)
	}

	if params.Quantity.GreaterThan(l.Quantity) {
		return nil, fmt.Errorf("%w: quantity exceeds the %s available", ErrInvalid, l.Quantity)
	}

	o := &Offer{
		ListingID: params.ListingID,
		BuyerID:   params.BuyerID,
		Price:     params.Price,
		Quantity:  params.Quantity,
		Message:   strings.TrimSpace(params.Message),
		Status:    StatusPending,
	}
	if err := s.repo.CreateOffer(ctx, o); err != nil {
		return nil, err
	}

	s.notifier.OfferChanged(ctx, o, "")

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Offer, error) {
	return s.repo.GetOffer(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Offer, error) {
	if filter.Limit <= 0 || filter.Limit > DefaultListLimit {
		filter.Limit = DefaultListLimit
	}

	return s.repo.ListOffers(ctx, filter)
}

// Accept marks a pending offer accepted. Conversion into a deal is a separate step.
func (s *Service) Accept(ctx context.Context, id uuid.UUID) (*Offer, error) {
	return s.transition(ctx, id, StatusAccepted, "", nil)
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*Offer, error) {
	return s.transition(ctx, id, StatusRejected, strings.TrimSpace(reason), nil)
}

// Withdraw lets the buyer who placed a pending offer take it back.
func (s *Service) Withdraw(ctx context.Context, id, buyerID uuid.UUID) (*Offer, error) {
	return s.transition(ctx, id, StatusWithdrawn, "", func(o *Offer) error {
		if o.BuyerID != buyerID {
			return fmt.Errorf("%w: only the buyer can withdraw an offer", user.ErrForbidden)
		}

		return nil
	})
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to Status, reason string, check func(*Offer) error) (*Offer, error) {
	o, err := s.repo.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Status != StatusPending {
		return nil, ErrNotPending
	}

	if check != nil {
		if err := check(o); err != nil {
			return nil, err
		}
	}

	from := o.Status
	o.Status = to
	o.RejectionReason = reason

	if err := s.repo.TransitionOffer(ctx, o); err != nil {
		if errors.Is(err, ErrNotPending) {
			return nil, ErrNotPending
		}

		return nil, fmt.Errorf("transition offer to %s: %w", to, err)
	}

	s.notifier.OfferChanged(ctx, o, from)

	return o, nil
}
