package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"go-encash/internal/employee"
	employeeerrors "go-encash/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ApplyEncashment(ctx context.Context, id string, leaveDays, shares int) (bool, error) {
	return true, nil
}

func TestEmployeeService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success strips the credential", func(t *testing.T) {
		employeeID := uuid.New()
		repo := &fakeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				assert.Equal(t, employeeID.String(), id)
				return &employee.Employee{
					ID:           employeeID,
					Name:         "John Doe",
					Email:        "john@example.com",
					Password:     "$2a$10$somethinghashed",
					Role:         employee.RoleEmployee,
					LeaveBalance: 15,
					Shares:       10,
				}, nil
			},
		}

		svc := employee.NewService(repo)
		resp, err := svc.GetProfile(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, "John Doe", resp.Name)
		assert.Equal(t, "john@example.com", resp.Email)
		assert.Equal(t, 15, resp.LeaveBalance)
		assert.Equal(t, 10, resp.Shares)
	})

	t.Run("missing employee", func(t *testing.T) {
		svc := employee.NewService(&fakeRepository{})

		_, err := svc.GetProfile(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
