package auth

import (
	"context"

	autherrors "go-encash/internal/auth/errors"
	"go-encash/internal/auth/token"
	"go-encash/internal/employee"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
}

type service struct {
	employees employee.Repository
	tokens    *token.Manager
	logger    *zap.Logger
}

func NewService(employees employee.Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	// 1. Ambil employee by email
	e, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		// Email salah dan password salah sengaja tidak dibedakan
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// 3. Generate token (identity + role, 1 jam)
	signed, err := s.tokens.Generate(e.ID.String(), e.Role)
	if err != nil {
		s.logger.Error("generate token failed", zap.String("email", email), zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("employee_id", e.ID.String()),
		zap.String("role", e.Role),
	)

	return LoginResponse{Token: signed}, nil
}
