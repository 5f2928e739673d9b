package contract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/offer"
	"github.com/farmfeed/farmfeed/internal/user"
)

type Service struct {
	deals    Deals
	offers   Offers
	listings Listings
	users    Users
	now      func() time.Time
}

func NewService(deals Deals, offers Offers, listings Listings, users Users) *Service {
	return &Service{
		deals:    deals,
		offers:   offers,
		listings: listings,
		users:    users,
		now:      time.Now,
	}
}

// lookup loads one related record into dst, leaving it nil when notFound is returned.
func lookup[T any](ctx context.Context, get func(context.Context, uuid.UUID) (*T, error), id uuid.UUID, notFound error, dst **T) func() error {
	return func() error {
		v, err := get(ctx, id)
		if err != nil {
			if errors.Is(err, notFound) {
				return nil
			}

			return err
		}

		*dst = v

		return nil
	}
}

// Generate builds the contract for a deal without changing any state.
func (s *Service) Generate(ctx context.Context, dealID uuid.UUID) (*Contract, error) {
	d, err := s.deals.Get(ctx, dealID)
	if err != nil {
		return nil, err
	}

	var (
		o      *offer.Offer
		l      *listing.Listing
		buyer  *user.User
		seller *user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(lookup(gctx, s.offers.Get, d.OfferID, offer.ErrNotFound, &o))
	g.Go(lookup(gctx, s.listings.Get, d.ListingID, listing.ErrNotFound, &l))
	g.Go(lookup(gctx, s.users.Get, d.BuyerID, user.ErrNotFound, &buyer))
	g.Go(lookup(gctx, s.users.Get, d.SellerID, user.ErrNotFound, &seller))

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading contract parties: %w", err)
	}

	c := &Contract{
		Number:        Number(d.ID),
		DealID:        d.ID,
		Status:        d.Status,
		PaymentStatus: d.PaymentStatus,
		GeneratedAt:   s.now().UTC(),
		Buyer:         party(d.BuyerID, buyer, UnknownBuyer),
		Seller:        party(d.SellerID, seller, UnknownSeller),
		Product: Product{
			Title:     UnknownProduct,
			Quantity:  d.Quantity,
			UnitPrice: d.FinalPrice,
		},
		Delivery: Delivery{
			Type:    d.DeliveryType,
			Address: d.DeliveryAddress,
			Date:    d.DeliveryDate,
		},
		Amounts: Amounts{
			ProductValue: d.ProductValue(),
			PlatformFee:  d.PlatformFee,
			TransportFee: decimal.Zero,
			Total:        d.TotalAmount,
		},
		Terms:             d.Terms,
		SpecialConditions: d.SpecialConditions,
	}

	if l != nil {
		c.Product.Title = l.Title
		c.Product.Description = l.Description
		c.Product.Commodity = l.Commodity
	}

	if o != nil {
		c.Offer = OfferTerms{
			Price:     o.Price,
			Quantity:  o.Quantity,
			Message:   o.Message,
			CreatedAt: o.CreatedAt,
		}
	}

	if d.TransportFee != nil {
		c.Amounts.TransportFee = *d.TransportFee
	}

	c.Formatted = map[string]string{
		"unit_price":    FormatZAR(c.Product.UnitPrice),
		"product_value": FormatZAR(c.Amounts.ProductValue),
		"platform_fee":  FormatZAR(c.Amounts.PlatformFee),
		"transport_fee": FormatZAR(c.Amounts.TransportFee),
		"total_amount":  FormatZAR(c.Amounts.Total),
	}

	return c, nil
}

// Issue generates the contract and marks the deal facilitated. A deal that
// cannot be facilitated keeps its status; the contract is returned anyway.
func (s *Service) Issue(ctx context.Context, dealID uuid.UUID) (*Contract, error) {
	c, err := s.Generate(ctx, dealID)
	if err != nil {
		return nil, err
	}

	d, err := s.deals.MarkFacilitated(ctx, dealID)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, deal.ErrInvalidTransition) {
			level = slog.LevelWarn
		}

		slog.Log(ctx, level, "contract issued without facilitating deal",
			"deal_id", dealID,
			"status", c.Status,
			"error", err,
		)

		return c, nil
	}

	c.Status = d.Status

	return c, nil
}

func party(id uuid.UUID, u *user.User, placeholder string) Party {
	if u == nil {
		return Party{ID: id, Name: placeholder}
	}

	return Party{ID: u.ID, Name: u.Name(), Email: u.Email}
}
