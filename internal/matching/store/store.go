package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/farmfeed/farmfeed/internal/listing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindCommodity(ctx context.Context, rawName string) (listing.Commodity, error) {
	query := `
		SELECT commodity
		FROM commodity_aliases
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var commodity string

	err := s.db.QueryRowContext(ctx, query, rawName).Scan(&commodity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding commodity alias: %w", err)
	}

	return listing.Commodity(commodity), nil
}

func (s *Store) CreateAlias(ctx context.Context, rawPattern string, commodity listing.Commodity) error {
	query := `
		INSERT INTO commodity_aliases (raw_pattern, commodity, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (raw_pattern) DO UPDATE SET commodity = EXCLUDED.commodity, created_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, rawPattern, commodity); err != nil {
		return fmt.Errorf("creating commodity alias: %w", err)
	}

	return nil
}
