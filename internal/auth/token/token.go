package token

import (
	"errors"
	"time"

	autherrors "go-encash/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims adalah hasil verifikasi token yang sudah divalidasi.
// Role di sini adalah satu-satunya sumber role untuk authorization.
type Claims struct {
	EmployeeID string
	Role       string
}

// Manager menandatangani dan memverifikasi bearer token dengan secret
// yang di-inject saat konstruksi, bukan dibaca dari env di tiap request.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Generate(employeeID, role string) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": employeeID,
		"role":        role,
		"exp":         time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

func (m *Manager) Parse(tokenString string) (Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, autherrors.ErrTokenExpired
		}
		return Claims{}, autherrors.ErrInvalidToken
	}
	if !t.Valid {
		return Claims{}, autherrors.ErrInvalidToken
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, autherrors.ErrInvalidToken
	}

	employeeID, ok := mapClaims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Claims{}, autherrors.ErrInvalidToken
	}
	role, _ := mapClaims["role"].(string)

	return Claims{EmployeeID: employeeID, Role: role}, nil
}
