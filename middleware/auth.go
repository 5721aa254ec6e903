package middleware

import (
	"net/http"
	"strings"

	"freshpress/utils"

	"github.com/gin-gonic/gin"
)

// PortalAuth validates the bearer token, resolves the portal session
// from the unified auth store and puts the caller's identity plus the
// upstream token into the request context. When portals are given, the
// session must belong to one of them.
func PortalAuth(portals ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := resolveSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		if len(portals) > 0 && !portalAllowed(session.Portal, portals) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This portal cannot access the requested resource"})
			return
		}
		setSessionContext(c, session)
		c.Next()
	}
}

// OptionalPortalAuth resolves the session when a valid token is
// present but lets unauthenticated requests through. The booking
// wizard's first steps are browsable without signing in.
func OptionalPortalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, ok := resolveSession(c); ok {
			setSessionContext(c, session)
		}
		c.Next()
	}
}

func resolveSession(c *gin.Context) (*utils.PortalSession, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := utils.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return nil, false
	}

	session, err := utils.GetPortalSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
	if err != nil || session == nil {
		return nil, false
	}
	return session, true
}

func setSessionContext(c *gin.Context, session *utils.PortalSession) {
	c.Set("userID", session.UserID)
	c.Set("portal", session.Portal)
	c.Set("role", session.Role)
	c.Set("branchID", session.BranchID)
	c.Set("permissions", session.Permissions)
	c.Set("upstreamToken", session.UpstreamToken)
	c.Set("tokenHash", utils.HashToken(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")))
}

func portalAllowed(portal string, allowed []string) bool {
	for _, p := range allowed {
		if p == portal {
			return true
		}
	}
	return false
}
