package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/validation"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	cryptoDomain "github.com/allisson/credvault/internal/crypto/domain"
	"github.com/allisson/credvault/internal/database"
	apperrors "github.com/allisson/credvault/internal/errors"
	appvalidation "github.com/allisson/credvault/internal/validation"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// credentialUseCase implements the CredentialUseCase interface.
type credentialUseCase struct {
	txManager      database.TxManager
	containerRepo  ContainerRepository
	credentialRepo CredentialRepository
	keeper         cryptoDomain.RootKeyKeeper
}

// Create stores a new credential, creating the caller's container on first use.
func (c *credentialUseCase) Create(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialType vaultDomain.CredentialType,
	title string,
	fields map[string]string,
) (*vaultDomain.Credential, error) {
	if !credentialType.IsValid() {
		return nil, vaultDomain.ErrInvalidCredentialType
	}

	if err := validation.Validate(title, validation.Required, appvalidation.NotBlank); err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}

	encryptedFields, err := c.encryptFields(ctx, fields)
	if err != nil {
		return nil, err
	}

	credential := &vaultDomain.Credential{
		ID:              uuid.Must(uuid.NewV7()),
		Type:            credentialType,
		Title:           title,
		EncryptedFields: encryptedFields,
		Fields:          fields,
		CreatedAt:       time.Now().UTC(),
	}

	// The container lookup and credential insert run in one transaction so a
	// freshly created container never leaks without its first credential.
	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		container, err := c.containerRepo.GetOrCreate(txCtx, organizationID, userID)
		if err != nil {
			return err
		}

		credential.ContainerID = container.ID

		return c.credentialRepo.Create(txCtx, credential)
	})
	if err != nil {
		return nil, err
	}

	return credential, nil
}

// List returns the caller's credentials with their fields decrypted.
func (c *credentialUseCase) List(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	query vaultDomain.CredentialQuery,
) ([]*vaultDomain.Credential, error) {
	if query.Type != "" && !query.Type.IsValid() {
		return nil, vaultDomain.ErrInvalidCredentialType
	}

	var credentials []*vaultDomain.Credential
	var err error

	if !query.Paged && query.Type != "" {
		credentials, err = c.credentialRepo.ListByType(ctx, organizationID, userID, query.Type)
	} else {
		credentials, err = c.credentialRepo.Query(ctx, organizationID, userID, query)
	}
	if err != nil {
		return nil, err
	}

	for _, credential := range credentials {
		plaintext, err := c.keeper.Decrypt(ctx, credential.EncryptedFields)
		if err != nil {
			return nil, apperrors.Wrap(cryptoDomain.ErrDecryptionFailed, "failed to decrypt credential fields")
		}

		fields, err := vaultDomain.DecodeFields(plaintext)
		if err != nil {
			return nil, apperrors.Wrap(cryptoDomain.ErrDecryptionFailed, "failed to decode credential fields")
		}

		credential.Fields = fields
	}

	return credentials, nil
}

// UpdateFields re-encrypts and replaces the fields payload of a credential.
//
// TODO: constrain the update to the caller's container in the repository
// query instead of trusting the credential id alone.
func (c *credentialUseCase) UpdateFields(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
	fields map[string]string,
) error {
	encryptedFields, err := c.encryptFields(ctx, fields)
	if err != nil {
		return err
	}

	return c.credentialRepo.UpdateFields(ctx, credentialID, encryptedFields)
}

// Delete removes a credential by id; deleting an absent credential succeeds.
func (c *credentialUseCase) Delete(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
) error {
	return c.credentialRepo.DeleteByID(ctx, credentialID)
}

// encryptFields serializes a fields map and encrypts it with the root key.
func (c *credentialUseCase) encryptFields(ctx context.Context, fields map[string]string) ([]byte, error) {
	plaintext, err := vaultDomain.EncodeFields(fields)
	if err != nil {
		return nil, err
	}

	ciphertext, err := c.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrEncryptionFailed, "failed to encrypt credential fields")
	}

	return ciphertext, nil
}

// NewCredentialUseCase creates a new credential use case instance with the provided dependencies.
func NewCredentialUseCase(
	txManager database.TxManager,
	containerRepo ContainerRepository,
	credentialRepo CredentialRepository,
	keeper cryptoDomain.RootKeyKeeper,
) CredentialUseCase {
	return &credentialUseCase{
		txManager:      txManager,
		containerRepo:  containerRepo,
		credentialRepo: credentialRepo,
		keeper:         keeper,
	}
}
