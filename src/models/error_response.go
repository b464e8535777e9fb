package models

import "fmt"

// Error kinds surfaced by the attendance/enrollment core. Callers can match
// on Kind to decide whether a failure is recoverable.
const (
	ErrNotFound      = "NotFound"
	ErrValidation    = "ValidationError"
	ErrFutureSession = "FutureSessionError"
	ErrSlotConflict  = "SlotConflict"
	ErrPersistence   = "PersistenceError"
)

// AppError - structured service error: {kind, message} plus an optional
// detail (which field failed, which session conflicts, ...)
type AppError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewNotFoundError(what string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: what + " not found"}
}

func NewValidationError(message, detail string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message, Detail: detail}
}

func NewFutureSessionError(detail string) *AppError {
	return &AppError{Kind: ErrFutureSession, Message: "attendance cannot be marked for a future session", Detail: detail}
}

func NewSlotConflictError(detail string) *AppError {
	return &AppError{Kind: ErrSlotConflict, Message: "ground slot already booked for this time range", Detail: detail}
}

func NewPersistenceError(err error) *AppError {
	return &AppError{Kind: ErrPersistence, Message: "ledger write failed", Detail: err.Error()}
}

// ErrorResponse - standard JSON error envelope
type ErrorResponse struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// SuccessResponse - standard JSON success envelope
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
