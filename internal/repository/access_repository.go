package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
)

// AccessRepository reads the flat access list granted to a user through
// its roles. This layer never writes accesses.
type AccessRepository struct {
	db *sqlx.DB
}

// NewAccessRepository constructs the repository.
func NewAccessRepository(db *sqlx.DB) *AccessRepository {
	return &AccessRepository{db: db}
}

// ListByUser returns the accesses granted to a username, in grant order.
func (r *AccessRepository) ListByUser(ctx context.Context, username string) ([]models.AccessEntry, error) {
	const query = `SELECT a.id, a.name, a.url, a.icon
        FROM accesses a
        JOIN role_accesses ra ON ra.access_id = a.id
        JOIN user_roles ur ON ur.role_id = ra.role_id
        JOIN users u ON u.id = ur.user_id
        WHERE u.username = $1
        ORDER BY a.id ASC`
	var entries []models.AccessEntry
	if err := r.db.SelectContext(ctx, &entries, query, username); err != nil {
		return nil, fmt.Errorf("list accesses for user: %w", err)
	}
	return entries, nil
}
