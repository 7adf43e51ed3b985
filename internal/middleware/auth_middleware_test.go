package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-encash/internal/auth/token"
	"go-encash/internal/employee"
	"go-encash/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Ok    bool `json:"ok"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(body, &env))
	if env.Error == nil {
		return ""
	}
	return env.Error.Code
}

func newAuthContext(w *httptest.ResponseRecorder, authorization string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employee", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	return c
}

func TestAuth(t *testing.T) {
	tm := token.NewManager("test-secret", time.Hour)

	t.Run("valid token sets identity and role", func(t *testing.T) {
		employeeID := uuid.New().String()
		signed, err := tm.Generate(employeeID, employee.RoleAdmin)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		c := newAuthContext(w, "Bearer "+signed)

		middleware.Auth(tm)(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, employeeID, c.GetString("employee_id"))
		assert.Equal(t, employee.RoleAdmin, c.GetString("role"))
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c := newAuthContext(w, "")

		middleware.Auth(tm)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, w.Body.Bytes()))
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c := newAuthContext(w, "Token abcdef")

		middleware.Auth(tm)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, w.Body.Bytes()))
	})

	t.Run("forged token", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		signed, err := other.Generate(uuid.New().String(), employee.RoleEmployee)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		c := newAuthContext(w, "Bearer "+signed)

		middleware.Auth(tm)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, w.Body.Bytes()))
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{
			"employee_id": uuid.New().String(),
			"role":        employee.RoleEmployee,
			"exp":         time.Now().Add(-time.Minute).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		c := newAuthContext(w, "Bearer "+signed)

		middleware.Auth(tm)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, w.Body.Bytes()))
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/encashments", nil)
		c.Set("role", employee.RoleAdmin)

		middleware.RequireRole(employee.RoleAdmin)(c)

		assert.False(t, c.IsAborted())
	})

	t.Run("employee rejected from admin route", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/encashments", nil)
		c.Set("role", employee.RoleEmployee)

		middleware.RequireRole(employee.RoleAdmin)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, w.Body.Bytes()))
	})

	t.Run("missing role claim rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/encashments", nil)

		middleware.RequireRole(employee.RoleAdmin)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
