package employee

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, employeeID string) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetProfile(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		s.logger.Warn("get profile failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

// mapToResponse drops the password hash from anything that leaves the service.
func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		LeaveBalance: e.LeaveBalance,
		Shares:       e.Shares,
	}
}
