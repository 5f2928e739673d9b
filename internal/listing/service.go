package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/user"
)

// DefaultListLimit caps list endpoints; there is no pagination.
const DefaultListLimit = 10

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=listing
type Repository interface {
	CreateListing(ctx context.Context, l *Listing) error
	GetListing(ctx context.Context, id uuid.UUID) (*Listing, error)
	ListListings(ctx context.Context, filter ListFilter) ([]*Listing, error)

	BeginBatch(ctx context.Context) (BatchTx, error)
}

type BatchTx interface {
	CreateListings(ctx context.Context, ls []*Listing) error
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

type CreateParams struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	Commodity   Commodity
	Price       decimal.Decimal
	Quantity    decimal.Decimal
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}

	if !p.Commodity.Valid() {
		return fmt.Errorf("%w: unknown commodity %q", ErrInvalid, p.Commodity)
	}

	if !p.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalid)
	}

	if !p.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalid)
	}

	return nil
}

type ListFilter struct {
	Commodity *Commodity
	SellerID  *uuid.UUID
	Limit     int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Listing, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.Require(ctx, params.SellerID, user.CapabilitySell); err != nil {
		return nil, err
	}

	l := toListing(params)
	if err := s.repo.CreateListing(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.repo.GetListing(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Listing, error) {
	if filter.Limit <= 0 || filter.Limit > DefaultListLimit {
		filter.Limit = DefaultListLimit
	}

	return s.repo.ListListings(ctx, filter)
}

// ImportBatch creates all listings for one seller atomically: either every row is
// stored or none is.
func (s *Service) ImportBatch(ctx context.Context, sellerID uuid.UUID, params []CreateParams) ([]*Listing, error) {
	if len(params) == 0 {
		return nil, nil
	}

	if _, err := s.users.Require(ctx, sellerID, user.CapabilitySell); err != nil {
		return nil, err
	}

	ls := make([]*Listing, len(params))

	for i, p := range params {
		p.SellerID = sellerID
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		ls[i] = toListing(p)
	}

	btx, err := s.repo.BeginBatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer btx.Rollback()

	if err := btx.CreateListings(ctx, ls); err != nil {
		return nil, fmt.Errorf("create listings: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return ls, nil
}

func toListing(p CreateParams) *Listing {
	return &Listing{
		SellerID:    p.SellerID,
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Commodity:   p.Commodity,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}
