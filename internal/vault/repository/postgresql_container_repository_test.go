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
)

func TestNewPostgreSQLContainerRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLContainerRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLContainerRepository{}, repo)
}

func TestPostgreSQLContainerRepository_GetOrCreate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLContainerRepository(db)
	ctx := context.Background()

	orgID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	containerID := uuid.Must(uuid.NewV7())
	createdAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "organization_id", "user_id", "created_at"}).
		AddRow(containerID, orgID, userID, createdAt)

	mock.ExpectQuery(`(?s)INSERT INTO containers .+ ON CONFLICT \(organization_id, user_id\).+RETURNING`).
		WithArgs(sqlmock.AnyArg(), orgID, userID, sqlmock.AnyArg()).
		WillReturnRows(rows)

	container, err := repo.GetOrCreate(ctx, orgID, userID)
	require.NoError(t, err)

	assert.Equal(t, containerID, container.ID)
	assert.Equal(t, orgID, container.OrganizationID)
	assert.Equal(t, userID, container.UserID)
	assert.WithinDuration(t, createdAt, container.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContainerRepository_GetOrCreate_ExistingRow(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLContainerRepository(db)
	ctx := context.Background()

	orgID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	existingID := uuid.Must(uuid.NewV7())
	existingCreatedAt := time.Now().UTC().Add(-24 * time.Hour)

	// On conflict the database returns the pre-existing row, not a new one
	rows := sqlmock.NewRows([]string{"id", "organization_id", "user_id", "created_at"}).
		AddRow(existingID, orgID, userID, existingCreatedAt)

	mock.ExpectQuery(`INSERT INTO containers`).
		WithArgs(sqlmock.AnyArg(), orgID, userID, sqlmock.AnyArg()).
		WillReturnRows(rows)

	container, err := repo.GetOrCreate(ctx, orgID, userID)
	require.NoError(t, err)

	assert.Equal(t, existingID, container.ID)
	assert.WithinDuration(t, existingCreatedAt, container.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContainerRepository_GetOrCreate_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLContainerRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO containers`).
		WillReturnError(assert.AnError)

	_, err = repo.GetOrCreate(ctx, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
	assert.NoError(t, mock.ExpectationsWereMet())
}
