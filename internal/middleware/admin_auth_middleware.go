package middleware

import (
	"net/http"
	"strings"

	"festfusion/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuthMiddleware guards the diagnostics endpoints with a signed bearer
// token. There are no end-user accounts; only operators hold this secret.
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("admin access not configured", "ADMIN_DISABLED"))
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("missing bearer token", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("invalid token", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		c.Next()
	}
}
