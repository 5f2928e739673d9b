package database

import (
	"context"
	"database/sql"
	"fmt"
)

var countedTables = []string{
	"users",
	"listings",
	"offers",
	"deals",
	"transport_requests",
	"transport_quotes",
	"commodity_aliases",
}

// Probe answers the health and diagnostic endpoints.
type Probe struct {
	db *sql.DB
}

func NewProbe(db *sql.DB) *Probe {
	return &Probe{db: db}
}

func (p *Probe) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// TableCounts returns the row count of every marketplace table.
func (p *Probe) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(countedTables))

	for _, table := range countedTables {
		var n int64
		if err := p.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}

		counts[table] = n
	}

	return counts, nil
}
