package auth_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-encash/internal/auth"
	autherrors "go-encash/internal/auth/errors"
	"go-encash/internal/auth/token"
	"go-encash/internal/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	findByEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) ApplyEncashment(ctx context.Context, id string, leaveDays, shares int) (bool, error) {
	return true, nil
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tm := token.NewManager("test-secret", time.Hour)

	employeeID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{
		findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			if email != "john@example.com" {
				return nil, gorm.ErrRecordNotFound
			}
			return &employee.Employee{
				ID:           employeeID,
				Name:         "John Doe",
				Email:        "john@example.com",
				Password:     string(hashed),
				Role:         employee.RoleEmployee,
				LeaveBalance: 20,
			}, nil
		},
	}

	svc := auth.NewService(repo, tm)

	t.Run("success issues a verifiable token", func(t *testing.T) {
		resp, err := svc.Login(ctx, "john@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		claims, err := tm.Parse(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, employeeID.String(), claims.EmployeeID)
		assert.Equal(t, employee.RoleEmployee, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "john@example.com", "letmein")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}
