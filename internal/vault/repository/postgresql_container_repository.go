package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/credvault/internal/database"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// PostgreSQLContainerRepository implements Container persistence for PostgreSQL databases.
type PostgreSQLContainerRepository struct {
	db *sql.DB
}

// GetOrCreate returns the container for the given (organization, user) pair,
// creating it if absent. The unique constraint plus insert-on-conflict makes
// concurrent calls converge on a single row.
func (p *PostgreSQLContainerRepository) GetOrCreate(
	ctx context.Context,
	organizationID uuid.UUID,
	userID uuid.UUID,
) (*vaultDomain.Container, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO containers (id, organization_id, user_id, created_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (organization_id, user_id)
			  DO UPDATE SET organization_id = EXCLUDED.organization_id
			  RETURNING id, organization_id, user_id, created_at`

	id, err := uuid.NewV7()
	if err != nil {
		return nil, wrapStorage(err, "failed to generate container id")
	}

	var container vaultDomain.Container
	err = querier.QueryRowContext(ctx, query, id, organizationID, userID, time.Now().UTC()).Scan(
		&container.ID,
		&container.OrganizationID,
		&container.UserID,
		&container.CreatedAt,
	)
	if err != nil {
		return nil, wrapStorage(err, "failed to get or create container")
	}

	return &container, nil
}

// NewPostgreSQLContainerRepository creates a new PostgreSQL Container repository instance.
func NewPostgreSQLContainerRepository(db *sql.DB) *PostgreSQLContainerRepository {
	return &PostgreSQLContainerRepository{db: db}
}
