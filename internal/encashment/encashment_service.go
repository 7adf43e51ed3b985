package encashment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-encash/internal/employee"
	employeeerrors "go-encash/internal/employee/errors"
	encashmenterrors "go-encash/internal/encashment/errors"
	"go-encash/internal/events"
	"go-encash/internal/messaging/kafka"
	"go-encash/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Conversion rates are fixed: every leave day encashes at $100 and every
// share costs $50, so shares come out at 2x leave days with any fractional
// remainder discarded.
const (
	leaveDayValue = 100
	sharePrice    = 50
)

//go:generate mockgen -source=encashment_service.go -destination=mock/encashment_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitEncashmentRequest) (SubmitEncashmentResponse, error)
	ListPending(ctx context.Context) ([]EncashmentResponse, error)
	Decide(ctx context.Context, id, status string) (DecideEncashmentResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, employees, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("encashment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("encashment.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitEncashmentRequest) (SubmitEncashmentResponse, error) {
	s.logger.Debug("submit encashment requested",
		zap.String("employee_id", employeeID),
		zap.Int("leave_days", req.LeaveDays),
	)

	if req.LeaveDays <= 0 {
		return SubmitEncashmentResponse{}, encashmenterrors.ErrInvalidLeaveDays
	}

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return SubmitEncashmentResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubmitEncashmentResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("submit encashment employee lookup failed", zap.Error(err))
		return SubmitEncashmentResponse{}, err
	}

	// Balance is only checked here, not reserved. Over-submission across
	// concurrent requests is caught by the conditional update at approval.
	if req.LeaveDays > e.LeaveBalance {
		s.logger.Warn("submit encashment insufficient balance",
			zap.String("employee_id", employeeID),
			zap.Int("leave_days", req.LeaveDays),
			zap.Int("leave_balance", e.LeaveBalance),
		)
		return SubmitEncashmentResponse{}, encashmenterrors.ErrInsufficientBalance
	}

	encashValue := req.LeaveDays * leaveDayValue
	shares := encashValue / sharePrice

	enc := &Encashment{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		LeaveDays:  req.LeaveDays,
		Shares:     shares,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, enc); err != nil {
		s.logger.Error("submit encashment persist failed", zap.Error(err))
		return SubmitEncashmentResponse{}, err
	}

	s.logger.Info("submit encashment success",
		zap.String("encashment_id", enc.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("shares", shares),
	)

	return SubmitEncashmentResponse{
		Message: "Encashment request submitted",
		Shares:  shares,
	}, nil
}

func (s *service) ListPending(ctx context.Context) ([]EncashmentResponse, error) {
	list, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) Decide(ctx context.Context, id, status string) (DecideEncashmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide encashment requested",
		zap.String("request_id", rid),
		zap.String("encashment_id", id),
		zap.String("status", status),
	)

	if status != StatusApproved && status != StatusRejected {
		return DecideEncashmentResponse{}, encashmenterrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return DecideEncashmentResponse{}, encashmenterrors.ErrEncashmentNotFound
	}

	enc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecideEncashmentResponse{}, encashmenterrors.ErrEncashmentNotFound
		}
		return DecideEncashmentResponse{}, err
	}
	if enc.Status != StatusPending {
		return DecideEncashmentResponse{}, encashmenterrors.ErrAlreadyDecided
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide encashment begin tx failed", zap.Error(err))
		return DecideEncashmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Conditional transition: only one concurrent decision can flip the row
	// out of pending. The loser sees zero rows affected.
	won, err := qtx.UpdateStatusIfPending(ctx, id, status)
	if err != nil {
		s.logger.Error("decide encashment status update failed", zap.Error(err))
		return DecideEncashmentResponse{}, err
	}
	if !won {
		s.logger.Warn("decide encashment lost race",
			zap.String("encashment_id", id),
			zap.String("status", status),
		)
		return DecideEncashmentResponse{}, encashmenterrors.ErrAlreadyDecided
	}

	if status == StatusApproved {
		etx := s.employees.WithTx(tx)
		applied, err := etx.ApplyEncashment(ctx, enc.EmployeeID.String(), enc.LeaveDays, enc.Shares)
		if err != nil {
			s.logger.Error("decide encashment balance update failed", zap.Error(err))
			return DecideEncashmentResponse{}, err
		}
		if !applied {
			// Balance guard failed: roll the status change back too.
			s.logger.Warn("decide encashment balance guard rejected",
				zap.String("encashment_id", id),
				zap.String("employee_id", enc.EmployeeID.String()),
			)
			return DecideEncashmentResponse{}, encashmenterrors.ErrInsufficientBalance
		}
	}

	if s.outbox != nil {
		event, err := kafka.NewDecisionEvent(rid, events.EncashmentDecidedEvent{
			EventType:    "encashment." + status,
			EncashmentID: enc.ID.String(),
			EmployeeID:   enc.EmployeeID.String(),
			LeaveDays:    enc.LeaveDays,
			Shares:       enc.Shares,
			Status:       status,
			OccurredAt:   time.Now().UTC(),
		})
		if err != nil {
			s.logger.Error("decide encashment marshal event failed", zap.Error(err))
			return DecideEncashmentResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("decide encashment outbox persist failed", zap.Error(err))
			return DecideEncashmentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide encashment commit failed", zap.Error(err))
		return DecideEncashmentResponse{}, err
	}

	s.logger.Info("decide encashment success",
		zap.String("encashment_id", id),
		zap.String("status", status),
	)

	return DecideEncashmentResponse{Message: "Request " + status}, nil
}

func mapToResponse(e Encashment) EncashmentResponse {
	resp := EncashmentResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID.String(),
		LeaveDays:  e.LeaveDays,
		Shares:     e.Shares,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
		resp.EmployeeEmail = e.Employee.Email
	}
	return resp
}

func mapToListResponse(list []Encashment) []EncashmentResponse {
	resp := make([]EncashmentResponse, len(list))
	for i, e := range list {
		resp[i] = mapToResponse(e)
	}
	return resp
}
