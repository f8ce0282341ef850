package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/carelog-dev/carelog/db"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/carelog-dev/carelog/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// AuditMiddleware records every authenticated mutation after it completes.
// Audit failures are logged and never affect the response.
func AuditMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if ctx.Request.Method == http.MethodGet {
			return
		}

		user, err := utils.GetCurrentUser(ctx)
		if err != nil {
			return
		}

		details, err := json.Marshal(map[string]interface{}{
			"method": ctx.Request.Method,
			"path":   ctx.Request.URL.Path,
			"status": ctx.Writer.Status(),
		})
		if err != nil {
			return
		}

		entry := models.AuditLog{
			UserID:    user.ID,
			Email:     user.Email,
			Action:    ctx.Request.Method,
			Resource:  ctx.FullPath(),
			ClientIP:  ctx.ClientIP(),
			UserAgent: ctx.GetHeader("User-Agent"),
			Details:   datatypes.JSON(details),
		}

		if err := db.DB.Create(&entry).Error; err != nil {
			log.Printf("Failed to write audit log: %v", err)
		}
	}
}
