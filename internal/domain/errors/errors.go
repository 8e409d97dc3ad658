// Package errors defines the application error taxonomy. Every failure a
// client can observe is one of these tagged values; the delivery layer maps
// them to HTTP statuses without inspecting driver-specific error types.
package errors

import (
	"net/http"

	"pssports/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// User-facing messages are Portuguese, matching the public API contract.
var (
	// Validation errors (caller fixes the request).
	ErrCredentialsRequired = NewBaseError(
		http.StatusBadRequest,
		"CREDENTIALS_REQUIRED",
		"Email e senha são obrigatórios",
		"",
	)

	ErrRefreshTokenRequired = NewBaseError(
		http.StatusBadRequest,
		"REFRESH_TOKEN_REQUIRED",
		"Refresh token é obrigatório",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	// Authentication errors (caller must re-authenticate).
	//
	// ErrInvalidCredentials deliberately covers both "email not registered"
	// and "wrong password" so responses stay byte-identical for the two cases.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email ou senha incorretos",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"Usuário inativo. Contate o administrador.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Refresh token inválido",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"Refresh token expirado",
		"",
	)

	ErrSessionUserInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_USER_INVALID",
		"Usuário inválido ou inativo",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Token não fornecido",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido ou expirado",
		"",
	)

	// Resource errors.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"E-mail já cadastrado",
		"",
	)

	ErrCPFTaken = NewBaseError(
		http.StatusBadRequest,
		"CPF_TAKEN",
		"CPF já cadastrado",
		"",
	)

	ErrRoleNotFound = NewBaseError(
		http.StatusNotFound,
		"ROLE_NOT_FOUND",
		"Função não encontrada",
		"",
	)

	ErrSchoolNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHOOL_NOT_FOUND",
		"Escola não encontrada",
		"",
	)

	ErrTrainerNotFound = NewBaseError(
		http.StatusNotFound,
		"TRAINER_NOT_FOUND",
		"Treinador não encontrado",
		"",
	)

	ErrPlayerNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAYER_NOT_FOUND",
		"Jogador não encontrado",
		"",
	)

	ErrGuardianNotFound = NewBaseError(
		http.StatusNotFound,
		"GUARDIAN_NOT_FOUND",
		"Responsável não encontrado",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Categoria não encontrada",
		"",
	)

	ErrModalityNotFound = NewBaseError(
		http.StatusNotFound,
		"MODALITY_NOT_FOUND",
		"Modalidade não encontrada",
		"",
	)

	ErrClassNotFound = NewBaseError(
		http.StatusNotFound,
		"CLASS_NOT_FOUND",
		"Turma não encontrada",
		"",
	)

	ErrEnrollmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ENROLLMENT_NOT_FOUND",
		"Matrícula não encontrada",
		"",
	)

	ErrAttendanceNotFound = NewBaseError(
		http.StatusNotFound,
		"ATTENDANCE_NOT_FOUND",
		"Presença não encontrada",
		"",
	)

	ErrLeadNotFound = NewBaseError(
		http.StatusNotFound,
		"LEAD_NOT_FOUND",
		"Lead não encontrado",
		"",
	)

	// ErrMagicLinkInvalid covers unknown and expired magic tokens alike.
	ErrMagicLinkInvalid = NewBaseError(
		http.StatusUnauthorized,
		"MAGIC_LINK_INVALID",
		"Link inválido ou expirado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito de recursos",
		"",
	)

	// Internal errors. Details stay server-side; clients only see the message.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno no servidor",
		"",
	)
)

// DatabaseExecuteError represents a persistence failure. It surfaces to the
// client as a generic 500; the wrapped error is only for server-side logs.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "Erro interno no servidor"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying error for errors.Is checks in tests and logs.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
