package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-encash/internal/employee"
	employeeerrors "go-encash/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	getProfileFn func(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}

func (f *fakeService) GetProfile(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	return f.getProfileFn(ctx, employeeID)
}

func TestEmployeeHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeService{
			getProfileFn: func(ctx context.Context, eid string) (employee.EmployeeResponse, error) {
				assert.Equal(t, employeeID, eid)
				return employee.EmployeeResponse{
					ID:           eid,
					Name:         "John Doe",
					Email:        "john@example.com",
					Role:         employee.RoleEmployee,
					LeaveBalance: 20,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employee", nil)
		c.Set("employee_id", employeeID)

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Ok   bool                      `json:"ok"`
			Data employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "John Doe", env.Data.Name)
		assert.Equal(t, 20, env.Data.LeaveBalance)
	})

	t.Run("no identity in context", func(t *testing.T) {
		svc := &fakeService{
			getProfileFn: func(ctx context.Context, eid string) (employee.EmployeeResponse, error) {
				t.Fatal("service should not be called")
				return employee.EmployeeResponse{}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employee", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := &fakeService{
			getProfileFn: func(ctx context.Context, eid string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employee", nil)
		c.Set("employee_id", uuid.New().String())

		h.Me(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
