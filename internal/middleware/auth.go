package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/carelog-dev/carelog/db"
	"github.com/carelog-dev/carelog/internal/auth"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/carelog-dev/carelog/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":       message,
		"success":     false,
		"status_code": http.StatusUnauthorized,
	})
}

// AuthMiddleware resolves the bearer token to a full user record before any
// authorization check runs. A token whose subject no longer exists is
// unauthorized, not missing.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			abortUnauthorized(ctx, "Authorization token is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(ctx, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := auth.VerifyJWT(parts[1])

		if err != nil {
			abortUnauthorized(ctx, "Invalid or expired token")
			return
		}

		var user models.User

		if err := db.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Database error when resolving token subject: %v", err)
			}
			abortUnauthorized(ctx, "Invalid or expired token")
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}
