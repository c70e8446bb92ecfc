package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"tripline/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// ServiceKeyMiddleware guards machine-to-machine endpoints. The caller
// presents the plain key in X-Service-Key; only its bcrypt hash is
// configured on the server.
func ServiceKeyMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		keyHash := os.Getenv("SERVICE_KEY_HASH")
		presented := c.GetHeader("X-Service-Key")

		if keyHash == "" || presented == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Service key missing")
			c.Abort()
			return
		}

		if err := utils.CompareServiceKey(keyHash, presented); err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid service key")
			c.Abort()
			return
		}

		c.Next()
	}
}
