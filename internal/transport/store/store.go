package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/transport"
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

const selectRequestColumns = `
	id, deal_id, requester_id, origin_address, destination_address, product_details,
	pickup_date, delivery_date, status, created_at, updated_at
`

func scanRequest(s scanner) (*transport.Request, error) {
	var (
		r       transport.Request
		details []byte
		status  string
	)

	if err := s.Scan(
		&r.ID, &r.DealID, &r.RequesterID, &r.OriginAddress, &r.DestinationAddress, &details,
		&r.PickupDate, &r.DeliveryDate, &status, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(details, &r.ProductDetails); err != nil {
		return nil, fmt.Errorf("decoding product details: %w", err)
	}

	r.Status = transport.RequestStatus(status)

	return &r, nil
}

func (s *Store) GetRequest(ctx context.Context, id uuid.UUID) (*transport.Request, error) {
	query := `SELECT ` + selectRequestColumns + ` FROM transport_requests WHERE id = $1`

	r, err := scanRequest(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transport.ErrRequestNotFound
		}

		return nil, fmt.Errorf("getting transport request: %w", err)
	}

	return r, nil
}

func (s *Store) CreateQuote(ctx context.Context, q *transport.Quote) error {
	query := `
		INSERT INTO transport_quotes (
			request_id, transporter_id, price, currency, estimated_delivery_date, terms, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		q.RequestID,
		q.TransporterID,
		q.Price,
		q.Currency,
		q.EstimatedDeliveryDate,
		q.Terms,
		q.Status,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating quote: %w", err)
	}

	return nil
}

func (s *Store) ListQuotes(ctx context.Context, requestID uuid.UUID) ([]*transport.Quote, error) {
	query := `
		SELECT id, request_id, transporter_id, price, currency, estimated_delivery_date, terms, status, created_at
		FROM transport_quotes
		WHERE request_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*transport.Quote

	for rows.Next() {
		var (
			q      transport.Quote
			status string
		)

		if err := rows.Scan(
			&q.ID, &q.RequestID, &q.TransporterID, &q.Price, &q.Currency,
			&q.EstimatedDeliveryDate, &q.Terms, &status, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		q.Status = transport.QuoteStatus(status)
		quotes = append(quotes, &q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}

	return quotes, nil
}

type requestTx struct {
	tx *sql.Tx
}

func (s *Store) BeginRequest(ctx context.Context) (transport.RequestTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transport request tx: %w", err)
	}

	return &requestTx{tx: dbTx}, nil
}

func (r *requestTx) Commit() error   { return r.tx.Commit() }
func (r *requestTx) Rollback() error { return r.tx.Rollback() }

func (r *requestTx) LockDeal(ctx context.Context, dealID uuid.UUID) (*transport.LockedDeal, error) {
	query := `
		SELECT d.id, d.status, COALESCE(l.title, ''), COALESCE(l.description, ''), d.quantity, d.delivery_type
		FROM deals d
		LEFT JOIN listings l ON l.id = d.listing_id
		WHERE d.id = $1
		FOR UPDATE OF d
	`

	var (
		d            transport.LockedDeal
		status       string
		deliveryType string
	)

	err := r.tx.QueryRowContext(ctx, query, dealID).Scan(
		&d.ID, &status, &d.Title, &d.Description, &d.Quantity, &deliveryType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transport.ErrDealNotFound
		}

		return nil, fmt.Errorf("locking deal: %w", err)
	}

	d.Status = deal.Status(status)
	d.DeliveryType = deal.DeliveryType(deliveryType)

	return &d, nil
}

func (r *requestTx) CreateRequest(ctx context.Context, req *transport.Request) error {
	details, err := json.Marshal(req.ProductDetails)
	if err != nil {
		return fmt.Errorf("encoding product details: %w", err)
	}

	query := `
		INSERT INTO transport_requests (
			deal_id, requester_id, origin_address, destination_address, product_details,
			pickup_date, delivery_date, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = r.tx.QueryRowContext(ctx, query,
		req.DealID,
		req.RequesterID,
		req.OriginAddress,
		req.DestinationAddress,
		string(details),
		req.PickupDate,
		req.DeliveryDate,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transport request: %w", err)
	}

	return nil
}

func (r *requestTx) SetDealStatus(ctx context.Context, dealID uuid.UUID, status deal.Status) error {
	_, err := r.tx.ExecContext(ctx,
		`UPDATE deals SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, dealID,
	)
	if err != nil {
		return fmt.Errorf("updating deal status: %w", err)
	}

	return nil
}
