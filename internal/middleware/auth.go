package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ownerKey is the gin context key holding the authenticated account id.
const ownerKey = "ownerId"

// RequireAuth verifies the bearer token and stores the resolved account id in
// the request context. Downstream layers trust that value as the true owner
// and perform no further verification of it.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		ownerID, err := VerifyToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ownerKey, ownerID)
		c.Next()
	}
}

// OwnerID extracts the account id placed by RequireAuth.
func OwnerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ownerKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
