package app

import (
	authService "github.com/allisson/credvault/internal/auth/service"
)

// PermissionChecker returns the permission checker backed by the external
// authorization service.
func (c *Container) PermissionChecker() authService.PermissionChecker {
	c.permissionCheckerInit.Do(func() {
		c.permissionChecker = authService.NewHTTPPermissionChecker(
			c.config.AuthzServiceURL,
			c.config.AuthzRequestTimeout,
		)
	})
	return c.permissionChecker
}
