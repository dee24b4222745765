package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/allisson/credvault/internal/database"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// PostgreSQLCredentialRepository implements Credential persistence for PostgreSQL databases.
type PostgreSQLCredentialRepository struct {
	db *sql.DB
}

// Create inserts a new credential into the PostgreSQL database.
func (p *PostgreSQLCredentialRepository) Create(ctx context.Context, credential *vaultDomain.Credential) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO credentials (id, container_id, credential_type, title, encrypted_fields, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		credential.ID,
		credential.ContainerID,
		credential.Type,
		credential.Title,
		credential.EncryptedFields,
		credential.CreatedAt,
	)
	if err != nil {
		return wrapStorage(err, "failed to create credential")
	}
	return nil
}

// Query retrieves a page of credentials owned by the (organization, user)
// pair, filtered, ordered, and paginated per the query. The order column and
// direction come from a whitelist, never from raw caller input.
func (p *PostgreSQLCredentialRepository) Query(
	ctx context.Context,
	organizationID uuid.UUID,
	userID uuid.UUID,
	query vaultDomain.CredentialQuery,
) ([]*vaultDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	sqlQuery := `SELECT c.id, c.container_id, c.credential_type, c.title, c.encrypted_fields, c.created_at
				 FROM credentials c
				 JOIN containers sc ON sc.id = c.container_id
				 WHERE sc.organization_id = $1 AND sc.user_id = $2`
	args := []any{organizationID, userID}

	if query.Type != "" {
		sqlQuery += fmt.Sprintf(" AND c.credential_type = $%d", len(args)+1)
		args = append(args, query.Type)
	}

	sqlQuery += fmt.Sprintf(" ORDER BY c.%s %s", query.OrderBy.Column, query.OrderBy.Direction)
	sqlQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, query.Limit, query.Offset)

	rows, err := querier.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapStorage(err, "failed to query credentials")
	}
	defer rows.Close()

	return scanCredentials(rows)
}

// ListByType retrieves all credentials of a type owned by the (organization,
// user) pair without pagination, ordered by creation time ascending.
func (p *PostgreSQLCredentialRepository) ListByType(
	ctx context.Context,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialType vaultDomain.CredentialType,
) ([]*vaultDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT c.id, c.container_id, c.credential_type, c.title, c.encrypted_fields, c.created_at
			  FROM credentials c
			  JOIN containers sc ON sc.id = c.container_id
			  WHERE sc.organization_id = $1 AND sc.user_id = $2 AND c.credential_type = $3
			  ORDER BY c.created_at ASC`

	rows, err := querier.QueryContext(ctx, query, organizationID, userID, credentialType)
	if err != nil {
		return nil, wrapStorage(err, "failed to list credentials by type")
	}
	defer rows.Close()

	return scanCredentials(rows)
}

// UpdateFields replaces the encrypted fields payload of a credential.
// Only the ciphertext changes; type, title, and timestamps stay untouched.
func (p *PostgreSQLCredentialRepository) UpdateFields(
	ctx context.Context,
	credentialID uuid.UUID,
	encryptedFields []byte,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE credentials
			  SET encrypted_fields = $1
			  WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, encryptedFields, credentialID)
	if err != nil {
		return wrapStorage(err, "failed to update credential fields")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStorage(err, "failed to read affected rows")
	}
	if affected == 0 {
		return vaultDomain.ErrCredentialNotFound
	}

	return nil
}

// DeleteByID removes a credential by its id. Deleting a credential that does
// not exist is not an error.
func (p *PostgreSQLCredentialRepository) DeleteByID(ctx context.Context, credentialID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM credentials WHERE id = $1`

	_, err := querier.ExecContext(ctx, query, credentialID)
	if err != nil {
		return wrapStorage(err, "failed to delete credential")
	}

	return nil
}

// scanCredentials collects credential rows into a slice; an empty result
// yields an empty slice, not nil.
func scanCredentials(rows *sql.Rows) ([]*vaultDomain.Credential, error) {
	credentials := []*vaultDomain.Credential{}

	for rows.Next() {
		var credential vaultDomain.Credential
		err := rows.Scan(
			&credential.ID,
			&credential.ContainerID,
			&credential.Type,
			&credential.Title,
			&credential.EncryptedFields,
			&credential.CreatedAt,
		)
		if err != nil {
			return nil, wrapStorage(err, "failed to scan credential")
		}
		credentials = append(credentials, &credential)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage(err, "failed to iterate credentials")
	}

	return credentials, nil
}

// NewPostgreSQLCredentialRepository creates a new PostgreSQL Credential repository instance.
func NewPostgreSQLCredentialRepository(db *sql.DB) *PostgreSQLCredentialRepository {
	return &PostgreSQLCredentialRepository{db: db}
}
