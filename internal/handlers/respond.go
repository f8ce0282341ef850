package handlers

import (
	"log"
	"strconv"

	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/notes"
	"github.com/gin-gonic/gin"
)

func respond(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, gin.H{
		"message":     message,
		"status_code": status,
		"success":     true,
		"data":        data,
	})
}

func respondError(ctx *gin.Context, err error) {
	e := apperr.From(err)

	if e.Kind == apperr.KindInternal && e.Err != nil {
		log.Printf("Internal error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, e.Err)
	}

	if e.Kind == apperr.KindUnauthorized {
		ctx.Header("WWW-Authenticate", "Bearer")
	}

	status := e.Status()

	ctx.JSON(status, gin.H{
		"error":       e.Message,
		"success":     false,
		"status_code": status,
	})
}

func parsePagination(ctx *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	return notes.ClampPage(skip, limit)
}
