package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/allisson/credvault/internal/database"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// MySQLCredentialRepository implements Credential persistence for MySQL databases.
type MySQLCredentialRepository struct {
	db *sql.DB
}

// Create inserts a new credential into the MySQL database.
func (m *MySQLCredentialRepository) Create(ctx context.Context, credential *vaultDomain.Credential) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO credentials (id, container_id, credential_type, title, encrypted_fields, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := credential.ID.MarshalBinary()
	if err != nil {
		return wrapStorage(err, "failed to marshal credential id")
	}

	containerID, err := credential.ContainerID.MarshalBinary()
	if err != nil {
		return wrapStorage(err, "failed to marshal container id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		containerID,
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
func (m *MySQLCredentialRepository) Query(
	ctx context.Context,
	organizationID uuid.UUID,
	userID uuid.UUID,
	query vaultDomain.CredentialQuery,
) ([]*vaultDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	orgID, err := organizationID.MarshalBinary()
	if err != nil {
		return nil, wrapStorage(err, "failed to marshal organization id")
	}

	ownerID, err := userID.MarshalBinary()
	if err != nil {
		return nil, wrapStorage(err, "failed to marshal user id")
	}

	sqlQuery := `SELECT c.id, c.container_id, c.credential_type, c.title, c.encrypted_fields, c.created_at
				 FROM credentials c
				 JOIN containers sc ON sc.id = c.container_id
				 WHERE sc.organization_id = ? AND sc.user_id = ?`
	args := []any{orgID, ownerID}

	if query.Type != "" {
		sqlQuery += " AND c.credential_type = ?"
		args = append(args, query.Type)
	}

	sqlQuery += fmt.Sprintf(" ORDER BY c.%s %s", query.OrderBy.Column, query.OrderBy.Direction)
	sqlQuery += " LIMIT ? OFFSET ?"
	args = append(args, query.Limit, query.Offset)

	rows, err := querier.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapStorage(err, "failed to query credentials")
	}
	defer rows.Close()

	return scanCredentialsBinary(rows)
}

// ListByType retrieves all credentials of a type owned by the (organization,
// user) pair without pagination, ordered by creation time ascending.
func (m *MySQLCredentialRepository) ListByType(
	ctx context.Context,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialType vaultDomain.CredentialType,
) ([]*vaultDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	orgID, err := organizationID.MarshalBinary()
	if err != nil {
		return nil, wrapStorage(err, "failed to marshal organization id")
	}

	ownerID, err := userID.MarshalBinary()
	if err != nil {
		return nil, wrapStorage(err, "failed to marshal user id")
	}

	query := `SELECT c.id, c.container_id, c.credential_type, c.title, c.encrypted_fields, c.created_at
			  FROM credentials c
			  JOIN containers sc ON sc.id = c.container_id
			  WHERE sc.organization_id = ? AND sc.user_id = ? AND c.credential_type = ?
			  ORDER BY c.created_at ASC`

	rows, err := querier.QueryContext(ctx, query, orgID, ownerID, credentialType)
	if err != nil {
		return nil, wrapStorage(err, "failed to list credentials by type")
	}
	defer rows.Close()

	return scanCredentialsBinary(rows)
}

// UpdateFields replaces the encrypted fields payload of a credential.
// Only the ciphertext changes; type, title, and timestamps stay untouched.
func (m *MySQLCredentialRepository) UpdateFields(
	ctx context.Context,
	credentialID uuid.UUID,
	encryptedFields []byte,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := credentialID.MarshalBinary()
	if err != nil {
		return wrapStorage(err, "failed to marshal credential id")
	}

	query := `UPDATE credentials
			  SET encrypted_fields = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, encryptedFields, id)
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
func (m *MySQLCredentialRepository) DeleteByID(ctx context.Context, credentialID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := credentialID.MarshalBinary()
	if err != nil {
		return wrapStorage(err, "failed to marshal credential id")
	}

	query := `DELETE FROM credentials WHERE id = ?`

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return wrapStorage(err, "failed to delete credential")
	}

	return nil
}

// scanCredentialsBinary collects credential rows with binary uuid columns
// into a slice; an empty result yields an empty slice, not nil.
func scanCredentialsBinary(rows *sql.Rows) ([]*vaultDomain.Credential, error) {
	credentials := []*vaultDomain.Credential{}

	for rows.Next() {
		var credential vaultDomain.Credential
		var id, containerID []byte

		err := rows.Scan(
			&id,
			&containerID,
			&credential.Type,
			&credential.Title,
			&credential.EncryptedFields,
			&credential.CreatedAt,
		)
		if err != nil {
			return nil, wrapStorage(err, "failed to scan credential")
		}

		if err := credential.ID.UnmarshalBinary(id); err != nil {
			return nil, wrapStorage(err, "failed to unmarshal credential id")
		}

		if err := credential.ContainerID.UnmarshalBinary(containerID); err != nil {
			return nil, wrapStorage(err, "failed to unmarshal container id")
		}

		credentials = append(credentials, &credential)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage(err, "failed to iterate credentials")
	}

	return credentials, nil
}

// NewMySQLCredentialRepository creates a new MySQL Credential repository instance.
func NewMySQLCredentialRepository(db *sql.DB) *MySQLCredentialRepository {
	return &MySQLCredentialRepository{db: db}
}
