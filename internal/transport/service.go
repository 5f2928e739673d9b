package transport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/user"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transport
type Repository interface {
	GetRequest(ctx context.Context, id uuid.UUID) (*Request, error)
	CreateQuote(ctx context.Context, q *Quote) error
	ListQuotes(ctx context.Context, requestID uuid.UUID) ([]*Quote, error)

	BeginRequest(ctx context.Context) (RequestTx, error)
}

type RequestTx interface {
	// LockDeal returns ErrDealNotFound when the deal does not exist.
	LockDeal(ctx context.Context, dealID uuid.UUID) (*LockedDeal, error)
	CreateRequest(ctx context.Context, r *Request) error
	SetDealStatus(ctx context.Context, dealID uuid.UUID, status deal.Status) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo  Repository
	users UserDirectory
}

func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

type RequestParams struct {
	DealID             uuid.UUID
	RequesterID        uuid.UUID
	OriginAddress      string
	DestinationAddress string
	PickupDate         time.Time
	DeliveryDate       time.Time
}

func (p RequestParams) validate() error {
	if strings.TrimSpace(p.OriginAddress) == "" || strings.TrimSpace(p.DestinationAddress) == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalid)
	}

	if p.PickupDate.IsZero() || p.DeliveryDate.IsZero() {
		return fmt.Errorf("%w: pickup and delivery dates are required", ErrInvalid)
	}

	if p.PickupDate.After(p.DeliveryDate) {
		return fmt.Errorf("%w: pickup date is after delivery date", ErrInvalid)
	}

	return nil
}

// Request records a transport request for a deal and moves the deal to
// transport-quoted in the same transaction.
func (s *Service) Request(ctx context.Context, params RequestParams) (*Request, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	rtx, err := s.repo.BeginRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transport request: %w", err)
	}
	defer rtx.Rollback()

	d, err := rtx.LockDeal(ctx, params.DealID)
	if err != nil {
		return nil, err
	}

	if d.Status.Closed() {
		return nil, fmt.Errorf("%w: deal is %s", ErrDealClosed, d.Status)
	}

	r := &Request{
		DealID:             d.ID,
		RequesterID:        params.RequesterID,
		OriginAddress:      strings.TrimSpace(params.OriginAddress),
		DestinationAddress: strings.TrimSpace(params.DestinationAddress),
		ProductDetails: ProductDetails{
			Title:        d.Title,
			Description:  d.Description,
			Quantity:     d.Quantity,
			DeliveryType: d.DeliveryType,
		},
		PickupDate:   params.PickupDate,
		DeliveryDate: params.DeliveryDate,
		Status:       RequestPending,
	}

	if err := rtx.CreateRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("create transport request: %w", err)
	}

	if err := rtx.SetDealStatus(ctx, d.ID, deal.StatusTransportQuoted); err != nil {
		return nil, fmt.Errorf("set deal status: %w", err)
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transport request: %w", err)
	}

	return r, nil
}

type QuoteParams struct {
	RequestID             uuid.UUID
	TransporterID         uuid.UUID
	Price                 decimal.Decimal
	EstimatedDeliveryDate time.Time
	Terms                 string
}

// Quote stores a transporter's price for a request. Neither the request nor
// the deal status changes.
func (s *Service) Quote(ctx context.Context, params QuoteParams) (*Quote, error) {
	if !params.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalid)
	}

	if params.EstimatedDeliveryDate.IsZero() {
		return nil, fmt.Errorf("%w: estimated delivery date is required", ErrInvalid)
	}

	r, err := s.repo.GetRequest(ctx, params.RequestID)
	if err != nil {
		return nil, err
	}

	if r.Status == RequestCancelled {
		return nil, fmt.Errorf("%w: request is cancelled", ErrInvalid)
	}

	if _, err := s.users.Require(ctx, params.TransporterID, user.CapabilityTransport); err != nil {
		return nil, err
	}

	q := &Quote{
		RequestID:             r.ID,
		TransporterID:         params.TransporterID,
		Price:                 params.Price,
		Currency:              Currency,
		EstimatedDeliveryDate: params.EstimatedDeliveryDate,
		Terms:                 strings.TrimSpace(params.Terms),
		Status:                QuotePending,
	}
	if err := s.repo.CreateQuote(ctx, q); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	return q, nil
}

func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (*Request, error) {
	return s.repo.GetRequest(ctx, id)
}

func (s *Service) ListQuotes(ctx context.Context, requestID uuid.UUID) ([]*Quote, error) {
	if _, err := s.repo.GetRequest(ctx, requestID); err != nil {
		return nil, err
	}

	return s.repo.ListQuotes(ctx, requestID)
}
