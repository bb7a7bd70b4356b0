package models

import (
	"errors"
	"fmt"
)

var (
	ErrConflictData         = errors.New("data conflicts with existing data")
	ErrDataNotFound         = errors.New("data not found")
	ErrUnknownTable         = errors.New("unknown reference table")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrUnauthenticated      = errors.New("unauthenticated")
)

// user-facing messages
const (
	MsgConnectionFailed = "No se pudo conectar con el servidor. Verifica que el backend esté ejecutándose."
	MsgEmptySelection   = "Por favor selecciona al menos un registro para despachar"
	MsgNotAllVerified   = "Debes seleccionar TODAS las bobinas para confirmar el despacho."
	MsgNoOrderSelected  = "Selecciona un pedido pendiente"
	MsgOrderSubmitting  = "El pedido se está enviando"
	MsgRequiredFields   = "Por favor completa todos los campos requeridos."
	MsgMissingRowID     = "No se pudo obtener el ID del registro"
	MsgRowAdded         = "Registro agregado exitosamente."
	MsgRowDeleted       = "Registro eliminado exitosamente."
	MsgIntakeFailed     = "Error al ingresar la bobina"
)

// ConnectionError is returned when backend is unreachable
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return MsgConnectionFailed
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ServerError is returned when backend answers with failure
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend error: status %d", e.Status)
}

// NewServerError creates ServerError
func NewServerError(status int, message string) *ServerError {
	return &ServerError{Status: status, Message: message}
}

// ValidationError is returned when local input is rejected before any remote call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates ValidationError
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsConnectionError reports whether err is ConnectionError
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsValidationError reports whether err is ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
