package encashment

import (
	"go-encash/internal/auth/token"
	"go-encash/internal/employee"
	"go-encash/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tm *token.Manager,
	rdb *redis.Client,
) {
	r.POST("/encash",
		middleware.Auth(tm),
		middleware.Idempotency(rdb),
		handler.Submit,
	)
	r.GET("/encashments",
		middleware.Auth(tm),
		middleware.RequireRole(employee.RoleAdmin),
		handler.ListPending,
	)
	r.PUT("/encashment/:id",
		middleware.Auth(tm),
		middleware.RequireRole(employee.RoleAdmin),
		handler.Decide,
	)
}
