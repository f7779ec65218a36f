package httpkit

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated caller of an admin route.
type Identity struct {
	Subject string
	Roles   []string
}

// HasRole reports whether the caller holds role.
func (i *Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// GetIdentity returns the caller set by AuthRequired, or nil when the
// request was not authenticated.
func GetIdentity(c *gin.Context) *Identity {
	subject := c.GetString(ContextSubjectKey)
	if subject == "" {
		return nil
	}

	var roles []string
	if raw, ok := c.Get(ContextRolesKey); ok {
		roles, _ = raw.([]string)
	}
	return &Identity{Subject: subject, Roles: roles}
}
