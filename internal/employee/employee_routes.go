package employee

import (
	"go-encash/internal/auth/token"
	"go-encash/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tm *token.Manager) {
	r.GET("/employee", middleware.Auth(tm), handler.Me)
}
