package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"codewithbuder/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenMiddleware validates the bearer token on write endpoints and
// stores the session id in the request context.
func AccessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header is missing"})
			return
		}

		tokenString := strings.Replace(header, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})

		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "Token is expired or invalid: " + err.Error()})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
			c.Set("claims", claims)

			if sessionID, ok := claims["sessionId"].(string); ok {
				c.Set("sessionId", sessionID)
			} else {
				c.AbortWithStatusJSON(401, gin.H{"error": "Invalid sessionId in token claims"})
				return
			}

			c.Next()
		} else {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}
	}
}

// SessionGate guards admin views on the bound identity. While the binder is
// unresolved the request is held rather than answered signed-out; a nil
// identity redirects to the sign-in page.
func SessionGate(binder *services.SessionBinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := binder.WaitResolved(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session state not resolved"})
			return
		}
		if binder.Identity() == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
