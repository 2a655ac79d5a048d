package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleet_api/internal/models"
)

// permissions is the single declarative table mapping each write/read
// operation to the roles allowed to perform it. Reads outside this table
// only require authentication. Unknown operations match nothing, so the
// gate fails closed.
var permissions = map[string][]string{
	"vehicles:write":    {models.RoleFleetManager},
	"drivers:write":     {models.RoleSafetyOfficer},
	"trips:write":       {models.RoleDispatcher},
	"maintenance:write": {models.RoleFleetManager},
	"fuel:write":        {models.RoleFinancialAnalyst},
	"analytics:read":    {models.RoleFleetManager, models.RoleFinancialAnalyst},
}

// Authorize rejects the request unless the authenticated caller's role is
// in the allowed set for operation. Matching is case-insensitive; there is
// no role hierarchy.
func Authorize(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleIfc, exists := c.Get("role")
		role, ok := roleIfc.(string)
		if !exists || !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		for _, allowed := range permissions[operation] {
			if strings.EqualFold(allowed, strings.TrimSpace(role)) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Insufficient permissions"})
	}
}
