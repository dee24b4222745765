package app

import (
	"fmt"

	vaultHTTP "github.com/allisson/credvault/internal/vault/http"
	vaultRepository "github.com/allisson/credvault/internal/vault/repository"
	vaultUseCase "github.com/allisson/credvault/internal/vault/usecase"
)

// ContainerRepository returns the container repository based on the database driver.
func (c *Container) ContainerRepository() (vaultUseCase.ContainerRepository, error) {
	var err error
	c.containerRepoInit.Do(func() {
		c.containerRepo, err = c.initContainerRepository()
		if err != nil {
			c.initErrors["containerRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["containerRepo"]; exists {
		return nil, storedErr
	}
	return c.containerRepo, nil
}

// CredentialRepository returns the credential repository based on the database driver.
func (c *Container) CredentialRepository() (vaultUseCase.CredentialRepository, error) {
	var err error
	c.credentialRepoInit.Do(func() {
		c.credentialRepo, err = c.initCredentialRepository()
		if err != nil {
			c.initErrors["credentialRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialRepo"]; exists {
		return nil, storedErr
	}
	return c.credentialRepo, nil
}

// CredentialUseCase returns the credential use case wrapped with permission
// checks and metrics recording.
func (c *Container) CredentialUseCase() (vaultUseCase.CredentialUseCase, error) {
	var err error
	c.credentialUseCaseInit.Do(func() {
		c.credentialUseCase, err = c.initCredentialUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialUseCase, nil
}

// CredentialHandler returns the HTTP handler for the vault routes.
func (c *Container) CredentialHandler() (*vaultHTTP.CredentialHandler, error) {
	useCase, err := c.CredentialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential use case for credential handler: %w", err)
	}
	return vaultHTTP.NewCredentialHandler(useCase, c.Logger()), nil
}

// initContainerRepository creates the container repository instance.
func (c *Container) initContainerRepository() (vaultUseCase.ContainerRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for container repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return vaultRepository.NewMySQLContainerRepository(db), nil
	case "postgres":
		return vaultRepository.NewPostgreSQLContainerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCredentialRepository creates the credential repository instance.
func (c *Container) initCredentialRepository() (vaultUseCase.CredentialRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for credential repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return vaultRepository.NewMySQLCredentialRepository(db), nil
	case "postgres":
		return vaultRepository.NewPostgreSQLCredentialRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCredentialUseCase creates the credential use case with all its dependencies.
//
// The base use case is wrapped with the permission decorator so every
// operation is authorized before it runs, and the metrics decorator records
// the outcome of the authorized call.
func (c *Container) initCredentialUseCase() (vaultUseCase.CredentialUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for credential use case: %w", err)
	}

	containerRepo, err := c.ContainerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get container repository for credential use case: %w", err)
	}

	credentialRepo, err := c.CredentialRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential repository for credential use case: %w", err)
	}

	keeper, err := c.RootKeyKeeper()
	if err != nil {
		return nil, fmt.Errorf("failed to get root key keeper for credential use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for credential use case: %w", err)
	}

	useCase := vaultUseCase.NewCredentialUseCase(txManager, containerRepo, credentialRepo, keeper)
	useCase = vaultUseCase.NewCredentialUseCaseWithPermissions(useCase, c.PermissionChecker())
	useCase = vaultUseCase.NewCredentialUseCaseWithMetrics(useCase, businessMetrics)

	return useCase, nil
}
