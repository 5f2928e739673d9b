package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/farmfeed/farmfeed/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, role, email, display_name, capabilities, created_at
		FROM users
		WHERE id = $1
	`

	var (
		u    user.User
		role string
		caps []string
	)

	// capabilities is a TEXT[]; database/sql needs pgtype's scanner for arrays.
	typeMap := pgtype.NewMap()

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &role, &u.Email, &u.DisplayName, typeMap.SQLScanner(&caps), &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	u.Role = user.Role(role)

	u.Capabilities = make([]user.Capability, len(caps))
	for i, c := range caps {
		u.Capabilities[i] = user.Capability(c)
	}

	return &u, nil
}
