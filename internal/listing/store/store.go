package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmfeed/farmfeed/internal/listing"
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

// Expected column order: id, seller_id, title, description, commodity, price, quantity, created_at, updated_at
func scanListing(s scanner) (*listing.Listing, error) {
	var (
		l         listing.Listing
		commodity string
	)

	if err := s.Scan(
		&l.ID, &l.SellerID, &l.Title, &l.Description, &commodity,
		&l.Price, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Commodity = listing.Commodity(commodity)

	return &l, nil
}

const selectListingColumns = `
	id, seller_id, title, description, commodity, price, quantity, created_at, updated_at
`

const insertListing = `
	INSERT INTO listings (seller_id, title, description, commodity, price, quantity, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	RETURNING id, created_at, updated_at
`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, q execer, l *listing.Listing) error {
	err := q.QueryRowContext(ctx, insertListing,
		l.SellerID,
		l.Title,
		l.Description,
		l.Commodity,
		l.Price,
		l.Quantity,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating listing: %w", err)
	}

	return nil
}

func (s *Store) CreateListing(ctx context.Context, l *listing.Listing) error {
	return insert(ctx, s.db, l)
}

func (s *Store) GetListing(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	query := `SELECT ` + selectListingColumns + ` FROM listings WHERE id = $1`

	l, err := scanListing(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listing.ErrNotFound
		}

		return nil, fmt.Errorf("getting listing: %w", err)
	}

	return l, nil
}

func (s *Store) ListListings(ctx context.Context, filter listing.ListFilter) ([]*listing.Listing, error) {
	query := `SELECT ` + selectListingColumns + ` FROM listings WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Commodity != nil {
		query += fmt.Sprintf(" AND commodity = $%d", argIdx)

		args = append(args, *filter.Commodity)
		argIdx++
	}

	if filter.SellerID != nil {
		query += fmt.Sprintf(" AND seller_id = $%d", argIdx)

		args = append(args, *filter.SellerID)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIdx)
	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing listings: %w", err)
	}
	defer rows.Close()

	var ls []*listing.Listing

	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}

		ls = append(ls, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return ls, nil
}

type batchTx struct {
	tx *sql.Tx
}

func (s *Store) BeginBatch(ctx context.Context) (listing.BatchTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning batch tx: %w", err)
	}

	return &batchTx{tx: dbTx}, nil
}

func (b *batchTx) Commit() error   { return b.tx.Commit() }
func (b *batchTx) Rollback() error { return b.tx.Rollback() }

func (b *batchTx) CreateListings(ctx context.Context, ls []*listing.Listing) error {
	for _, l := range ls {
		if err := insert(ctx, b.tx, l); err != nil {
			return err
		}
	}

	return nil
}
