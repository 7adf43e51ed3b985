package encashmenterrors

import (
	"net/http"

	"go-encash/internal/shared/apperror"
)

var (
	ErrInvalidLeaveDays = apperror.New(
		apperror.CodeInvalidInput,
		"Leave days must be a positive number",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"Insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be approved or rejected",
		http.StatusBadRequest,
	)
	ErrEncashmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Encashment request not found",
		http.StatusNotFound,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Encashment request has already been decided",
		http.StatusConflict,
	)
)
