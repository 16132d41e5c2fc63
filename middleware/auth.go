package middleware

import (
	"net/http"
	"strings"

	"dispatchly/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthDispatcherMiddleware authenticates the dispatcher from the Bearer
// token and stores dispatcherID and tenantID on the request context.
func JWTAuthDispatcherMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		dispatcherID, tenantID, err := utils.ExtractDispatcherFromToken(tokenString)
		if err != nil || dispatcherID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("dispatcherID", dispatcherID)
		c.Set("tenantID", tenantID)
		c.Next()
	}
}

// DispatcherID reads the authenticated dispatcher id set by
// JWTAuthDispatcherMiddleware.
func DispatcherID(c *gin.Context) string {
	if v, exists := c.Get("dispatcherID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
