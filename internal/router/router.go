package router

import (
	"time"

	"github.com/carelog-dev/carelog/internal/handlers"
	"github.com/carelog-dev/carelog/internal/middleware"
	"github.com/carelog-dev/carelog/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/signup", handlers.Signup)
		api.POST("/login", handlers.Login)

		authed := api.Group("", middleware.AuthMiddleware(), middleware.AuditMiddleware())
		{
			authed.GET("/me", handlers.Me)
			authed.GET("/doctors", handlers.ListDoctors)

			authed.POST("/me/doctors", handlers.AssignDoctors)
			authed.POST("/me/doctors/remove", handlers.RemoveDoctors)
			authed.GET("/me/doctors", handlers.ListMyDoctors)
			authed.GET("/me/patients", handlers.ListMyPatients)

			authed.POST("/notes", handlers.CreateNote)
			authed.GET("/notes", handlers.ListNotes)
			authed.GET("/notes/:note_id", handlers.GetNote)
		}
	}

	return r
}
