package token_test

import (
	"testing"
	"time"

	autherrors "go-encash/internal/auth/errors"
	"go-encash/internal/auth/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signWithExpiry(t *testing.T, secret string, expiry time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"employee_id": uuid.New().String(),
		"role":        "EMPLOYEE",
		"exp":         time.Now().Add(expiry).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestManager_GenerateAndParse(t *testing.T) {
	tm := token.NewManager("test-secret", time.Hour)
	employeeID := uuid.New().String()

	signed, err := tm.Generate(employeeID, "ADMIN")
	assert.NoError(t, err)

	claims, err := tm.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, employeeID, claims.EmployeeID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestManager_Parse(t *testing.T) {
	tm := token.NewManager("test-secret", time.Hour)

	t.Run("expired token", func(t *testing.T) {
		signed := signWithExpiry(t, "test-secret", -time.Minute)

		_, err := tm.Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed := signWithExpiry(t, "other-secret", time.Hour)

		_, err := tm.Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := tm.Parse("not.a.token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("missing employee claim", func(t *testing.T) {
		claims := jwt.MapClaims{
			"role": "EMPLOYEE",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = tm.Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
