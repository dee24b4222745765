package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/credvault/internal/crypto/domain"
	cryptoService "github.com/allisson/credvault/internal/crypto/service"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// RootKeyKeeper returns the root key keeper opened through the configured KMS provider.
func (c *Container) RootKeyKeeper() (cryptoDomain.RootKeyKeeper, error) {
	var err error
	c.rootKeyKeeperInit.Do(func() {
		c.rootKeyKeeper, err = c.initRootKeyKeeper()
		if err != nil {
			c.initErrors["rootKeyKeeper"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["rootKeyKeeper"]; exists {
		return nil, storedErr
	}
	return c.rootKeyKeeper, nil
}

// initRootKeyKeeper opens the root key keeper from the configured key URI.
func (c *Container) initRootKeyKeeper() (cryptoDomain.RootKeyKeeper, error) {
	if c.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("KMS_KEY_URI is required")
	}

	keeper, err := c.KMSService().OpenKeeper(context.Background(), c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open root key keeper: %w", err)
	}
	return keeper, nil
}
