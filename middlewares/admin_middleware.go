package middlewares

import (
	"net/http"

	"moving-tracker/constants"
	"moving-tracker/models"

	"github.com/gin-gonic/gin"
)

// AdminOnly rejects requests whose token lacks the admin claim. Must run
// after AuthMiddleware so "user" is populated. The check is against the
// claim, not the database row, so a demoted admin keeps access until the
// token expires.
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		claims, ok := user.(*models.UserClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		if !claims.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": constants.ErrAdminOnly})
			return
		}

		ctx.Next()
	}
}
