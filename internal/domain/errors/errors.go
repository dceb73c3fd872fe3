package errors

import (
	"net/http"

	"prism/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Import-related errors
	ErrInvalidImportPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMPORT_PAYLOAD",
		"匯入資料格式不正確",
		"",
	)

	ErrUnknownPlatform = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLATFORM",
		"不支援的平台",
		"",
	)

	ErrUnknownOrigin = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ORIGIN",
		"不支援的資料來源",
		"",
	)

	// ErrSchemaMismatch is the structural failure class: no row in the
	// batch matched any known column of the platform schema.
	ErrSchemaMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"SCHEMA_MISMATCH",
		"無法辨識匯入檔案的欄位",
		"",
	)

	ErrImportSuperseded = NewBaseError(
		http.StatusConflict,
		"IMPORT_SUPERSEDED",
		"此次匯入已被較新的資料取代",
		"",
	)

	// Report-related errors
	ErrDatasetNotFound = NewBaseError(
		http.StatusNotFound,
		"DATASET_NOT_FOUND",
		"尚未匯入任何資料",
		"",
	)

	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"尚未產生合併報告",
		"",
	)

	// Sync-related errors
	ErrAdsSyncFailed = NewBaseError(
		http.StatusBadGateway,
		"ADS_SYNC_FAILED",
		"廣告平台同步失敗",
		"",
	)

	ErrAdsSyncNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"ADS_SYNC_NOT_CONFIGURED",
		"尚未設定廣告平台 API",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"日期區間不正確",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
