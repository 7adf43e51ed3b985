package middleware

import (
	"errors"
	"strings"

	autherrors "go-encash/internal/auth/errors"
	"go-encash/internal/auth/token"
	"go-encash/internal/shared/contextutil"
	"go-encash/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Auth memverifikasi bearer token dan menaruh identity + role ke context.
// Token manager di-inject supaya secret tidak dibaca dari env per request.
func Auth(tm *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			errObj := autherrors.ErrTokenNotFound
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, err := tm.Parse(tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, autherrors.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Set("role", claims.Role)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), claims.EmployeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole menolak caller yang role claim-nya tidak ada di daftar.
// Role hanya boleh berasal dari token yang sudah diverifikasi oleh Auth.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			errObj := autherrors.ErrForbidden
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			errObj := autherrors.ErrForbidden
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
