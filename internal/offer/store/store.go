package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmfeed/farmfeed/internal/offer"
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

// Expected column order: id, listing_id, buyer_id, price, quantity, message, status,
// rejection_reason, deal_id, created_at, updated_at
func scanOffer(s scanner) (*offer.Offer, error) {
	var (
		o      offer.Offer
		status string
		reason sql.NullString
	)

	if err := s.Scan(
		&o.ID, &o.ListingID, &o.BuyerID, &o.Price, &o.Quantity, &o.Message, &status,
		&reason, &o.DealID, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = offer.Status(status)
	o.RejectionReason = reason.String

	return &o, nil
}

const selectOfferColumns = `
	id, listing_id, buyer_id, price, quantity, message, status,
	rejection_reason, deal_id, created_at, updated_at
`

func (s *Store) CreateOffer(ctx context.Context, o *offer.Offer) error {
	query := `
		INSERT INTO offers (listing_id, buyer_id, price, quantity, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		o.ListingID,
		o.BuyerID,
		o.Price,
		o.Quantity,
		o.Message,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating offer: %w", err)
	}

	return nil
}

func (s *Store) GetOffer(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + ` FROM offers WHERE id = $1`

	o, err := scanOffer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, offer.ErrNotFound
		}

		return nil, fmt.Errorf("getting offer: %w", err)
	}

	return o, nil
}

func (s *Store) ListOffers(ctx context.Context, filter offer.ListFilter) ([]*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + ` FROM offers WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.ListingID != nil {
		query += fmt.Sprintf(" AND listing_id = $%d", argIdx)

		args = append(args, *filter.ListingID)
		argIdx++
	}

	if filter.BuyerID != nil {
		query += fmt.Sprintf(" AND buyer_id = $%d", argIdx)

		args = append(args, *filter.BuyerID)
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
		return nil, fmt.Errorf("listing offers: %w", err)
	}
	defer rows.Close()

	var offers []*offer.Offer

	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning offer: %w", err)
		}

		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offers: %w", err)
	}

	return offers, nil
}

// TransitionOffer only touches rows that are still pending, so two concurrent
// accept/reject calls cannot both succeed.
func (s *Store) TransitionOffer(ctx context.Context, o *offer.Offer) error {
	query := `
		UPDATE offers
		SET status = $1, rejection_reason = NULLIF($2, ''), updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, o.Status, o.RejectionReason, o.ID).Scan(&o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return offer.ErrNotPending
		}

		return fmt.Errorf("transitioning offer: %w", err)
	}

	return nil
}
