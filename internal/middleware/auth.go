package middleware

import (
	"net/http"
	"strings"

	"training-tracker/internal/auth"
	"training-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// identityKey is where Auth stores the verified identity on the context.
const identityKey = "identity"

// Auth verifies the bearer token and puts the decoded identity on the
// context. Missing, malformed, invalid and expired tokens all answer 403
// and abort; downstream handlers never run without an identity attached.
func Auth(tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			util.Error(c, http.StatusForbidden, util.CodeAuth, "missing bearer token")
			c.Abort()
			return
		}

		id, err := tokens.Verify(tokenStr)
		if err != nil {
			msg := "invalid token"
			if err == auth.ErrTokenExpired {
				msg = "token expired"
			}
			util.Error(c, http.StatusForbidden, util.CodeAuth, msg)
			c.Abort()
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Identity returns the identity attached by Auth, if any.
func Identity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*auth.Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}
