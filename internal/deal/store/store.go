package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/deal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectDealColumns = `
	id, offer_id, listing_id, buyer_id, seller_id, transporter_id, final_price, quantity,
	delivery_type, delivery_address, delivery_date, status, payment_status, platform_fee,
	transport_fee, total_amount, terms, special_conditions, created_at, updated_at
`

func scanDeal(s scanner) (*deal.Deal, error) {
	var (
		d            deal.Deal
		deliveryType string
		status       string
		payment      string
		transportFee decimal.NullDecimal
	)

	if err := s.Scan(
		&d.ID, &d.OfferID, &d.ListingID, &d.BuyerID, &d.SellerID, &d.TransporterID,
		&d.FinalPrice, &d.Quantity, &deliveryType, &d.DeliveryAddress, &d.DeliveryDate,
		&status, &payment, &d.PlatformFee, &transportFee, &d.TotalAmount,
		&d.Terms, &d.SpecialConditions, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.DeliveryType = deal.DeliveryType(deliveryType)
	d.Status = deal.Status(status)
	d.PaymentStatus = deal.PaymentStatus(payment)

	if transportFee.Valid {
		d.TransportFee = &transportFee.Decimal
	}

	return &d, nil
}

func nullFee(fee *decimal.Decimal) decimal.NullDecimal {
	if fee == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *fee, Valid: true}
}

func (s *Store) GetDeal(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	query := `SELECT ` + selectDealColumns + ` FROM deals WHERE id = $1`

	d, err := scanDeal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, deal.ErrNotFound
		}

		return nil, fmt.Errorf("getting deal: %w", err)
	}

	return d, nil
}

func (s *Store) ListDeals(ctx context.Context, filter deal.ListFilter) ([]*deal.Deal, error) {
	query := `SELECT ` + selectDealColumns + ` FROM deals WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.BuyerID != nil {
		query += fmt.Sprintf(" AND buyer_id = $%d", argIdx)

		args = append(args, *filter.BuyerID)
		argIdx++
	}

	if filter.SellerID != nil {
		query += fmt.Sprintf(" AND seller_id = $%d", argIdx)

		args = append(args, *filter.SellerID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIdx)
	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing deals: %w", err)
	}
	defer rows.Close()

	var deals []*deal.Deal

	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning deal: %w", err)
		}

		deals = append(deals, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deals: %w", err)
	}

	return deals, nil
}

func (s *Store) UpdateDealStatus(ctx context.Context, d *deal.Deal, from deal.Status) error {
	query := `
		UPDATE deals
		SET status = $1, transport_fee = $2, total_amount = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Status,
		nullFee(d.TransportFee),
		d.TotalAmount,
		d.ID,
		from,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return deal.ErrInvalidTransition
		}

		return fmt.Errorf("updating deal status: %w", err)
	}

	return nil
}

type conversionTx struct {
	tx *sql.Tx
}

func (s *Store) BeginConversion(ctx context.Context) (deal.ConversionTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning conversion tx: %w", err)
	}

	return &conversionTx{tx: dbTx}, nil
}

func (c *conversionTx) Commit() error   { return c.tx.Commit() }
func (c *conversionTx) Rollback() error { return c.tx.Rollback() }

// FindEligibleOffer skips offers locked by a concurrent conversion instead of
// waiting for them.
func (c *conversionTx) FindEligibleOffer(ctx context.Context, offerID *uuid.UUID) (*deal.EligibleOffer, error) {
	query := `
		SELECT o.id, o.listing_id, o.buyer_id, l.seller_id, o.price, o.quantity
		FROM offers o
		JOIN listings l ON l.id = o.listing_id
		WHERE o.status = 'accepted' AND o.deal_id IS NULL
	`

	var args []any
	if offerID != nil {
		query += ` AND o.id = $1`

		args = append(args, *offerID)
	}

	query += ` ORDER BY o.created_at LIMIT 1 FOR UPDATE OF o SKIP LOCKED`

	var eo deal.EligibleOffer

	err := c.tx.QueryRowContext(ctx, query, args...).Scan(
		&eo.OfferID, &eo.ListingID, &eo.BuyerID, &eo.SellerID, &eo.Price, &eo.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, deal.ErrNoEligibleOffer
		}

		return nil, fmt.Errorf("finding eligible offer: %w", err)
	}

	return &eo, nil
}

func (c *conversionTx) CreateDeal(ctx context.Context, d *deal.Deal) error {
	query := `
		INSERT INTO deals (
			offer_id, listing_id, buyer_id, seller_id, final_price, quantity,
			delivery_type, delivery_address, delivery_date, status, payment_status,
			platform_fee, total_amount, terms, special_conditions, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		d.OfferID,
		d.ListingID,
		d.BuyerID,
		d.SellerID,
		d.FinalPrice,
		d.Quantity,
		d.DeliveryType,
		d.DeliveryAddress,
		d.DeliveryDate,
		d.Status,
		d.PaymentStatus,
		d.PlatformFee,
		d.TotalAmount,
		d.Terms,
		d.SpecialConditions,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating deal: %w", err)
	}

	return nil
}

func (c *conversionTx) LinkOffer(ctx context.Context, offerID, dealID uuid.UUID) error {
	res, err := c.tx.ExecContext(ctx,
		`UPDATE offers SET deal_id = $1, updated_at = NOW() WHERE id = $2 AND deal_id IS NULL`,
		dealID, offerID,
	)
	if err != nil {
		return fmt.Errorf("linking offer: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("linking offer: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("linking offer %s: already converted", offerID)
	}

	return nil
}
