package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/credvault/internal/database"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// MySQLContainerRepository implements Container persistence for MySQL databases.
type MySQLContainerRepository struct {
	db *sql.DB
}

// GetOrCreate returns the container for the given (organization, user) pair,
// creating it if absent. The unique constraint plus insert-on-duplicate makes
// concurrent calls converge on a single row.
func (m *MySQLContainerRepository) GetOrCreate(
	ctx context.Context,
	organizationID uuid.UUID,
	userID uuid.UUID,
) (*vaultDomain.Container, error) {
	querier := database.GetTx(ctx, m.db)

	insertQuery := `INSERT INTO containers (id, organization_id, user_id, created_at)
					VALUES (?, ?, ?, ?)
					ON DUPLICATE KEY UPDATE id = id`

	id, err := uuid.NewV7()
	if err != nil {
		return nil, wrapStorage(err, "failed to generate container id")
	}

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, wrapStorage(err, "failed to marshal container id")
	}

	orgIDBytes, err := organizationID.MarshalBinary()
	if err != nil {
		return nil, wrapStorage(err, "failed to marshal organization id")
	}

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, wrapStorage(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, insertQuery, idBytes, orgIDBytes, userIDBytes, time.Now().UTC())
	if err != nil {
		return nil, wrapStorage(err, "failed to create container")
	}

	selectQuery := `SELECT id, organization_id, user_id, created_at
					FROM containers
					WHERE organization_id = ? AND user_id = ?
					LIMIT 1`

	var container vaultDomain.Container
	var containerID, orgID, ownerID []byte

	err = querier.QueryRowContext(ctx, selectQuery, orgIDBytes, userIDBytes).Scan(
		&containerID,
		&orgID,
		&ownerID,
		&container.CreatedAt,
	)
	if err != nil {
		return nil, wrapStorage(err, "failed to get container")
	}

	if err := container.ID.UnmarshalBinary(containerID); err != nil {
		return nil, wrapStorage(err, "failed to unmarshal container id")
	}

	if err := container.OrganizationID.UnmarshalBinary(orgID); err != nil {
		return nil, wrapStorage(err, "failed to unmarshal organization id")
	}

	if err := container.UserID.UnmarshalBinary(ownerID); err != nil {
		return nil, wrapStorage(err, "failed to unmarshal user id")
	}

	return &container, nil
}

// NewMySQLContainerRepository creates a new MySQL Container repository instance.
func NewMySQLContainerRepository(db *sql.DB) *MySQLContainerRepository {
	return &MySQLContainerRepository{db: db}
}
