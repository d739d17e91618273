package middlewares

import (
	"net/http"
	"strings"

	"moving-tracker/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the embedded
// claims in the request context under "user".
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := authService.GetClaimsFromToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set("user", claims)

		ctx.Next()
	}
}
