package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/credvault/internal/errors"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

func TestMySQLCredentialRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLCredentialRepository(db)
	ctx := context.Background()

	credential := &vaultDomain.Credential{
		ID:              uuid.Must(uuid.NewV7()),
		ContainerID:     uuid.Must(uuid.NewV7()),
		Type:            vaultDomain.CredentialTypeCreditCard,
		Title:           "personal visa",
		EncryptedFields: []byte("ciphertext"),
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO credentials`).
		WithArgs(
			mustMarshalUUID(t, credential.ID),
			mustMarshalUUID(t, credential.ContainerID),
			credential.Type,
			credential.Title,
			credential.EncryptedFields,
			credential.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, credential)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLCredentialRepository_Query(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLCredentialRepository(db)
	ctx := context.Background()

	orgID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	containerID := uuid.Must(uuid.NewV7())
	credentialID := uuid.Must(uuid.NewV7())

	rows := sqlmock.NewRows([]string{"id", "container_id", "credential_type", "title", "encrypted_fields", "created_at"}).
		AddRow(mustMarshalUUID(t, credentialID), mustMarshalUUID(t, containerID), "web_login", "github", []byte("c1"), time.Now().UTC())

	mock.ExpectQuery(`(?s)SELECT .+ FROM credentials c\s+JOIN containers sc ON sc\.id = c\.container_id\s+WHERE sc\.organization_id = \? AND sc\.user_id = \? ORDER BY c\.created_at asc LIMIT \? OFFSET \?`).
		WithArgs(mustMarshalUUID(t, orgID), mustMarshalUUID(t, userID), 5, 0).
		WillReturnRows(rows)

	credentials, err := repo.Query(ctx, orgID, userID, vaultDomain.NewCredentialQuery())
	require.NoError(t, err)
	require.Len(t, credentials, 1)
	assert.Equal(t, credentialID, credentials[0].ID)
	assert.Equal(t, containerID, credentials[0].ContainerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLCredentialRepository_UpdateFields_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLCredentialRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE credentials`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateFields(ctx, uuid.Must(uuid.NewV7()), []byte("ciphertext"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLCredentialRepository_DeleteByID_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLCredentialRepository(db)
	ctx := context.Background()

	credentialID := uuid.Must(uuid.NewV7())

	mock.ExpectExec(`DELETE FROM credentials WHERE id = \?`).
		WithArgs(mustMarshalUUID(t, credentialID)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteByID(ctx, credentialID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLCredentialRepository_Query_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLCredentialRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`(?s)SELECT .+ FROM credentials`).
		WillReturnError(assert.AnError)

	_, err = repo.Query(ctx, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), vaultDomain.NewCredentialQuery())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
	assert.NoError(t, mock.ExpectationsWereMet())
}
