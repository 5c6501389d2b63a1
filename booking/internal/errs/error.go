package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("Reserva não encontrada")
	ErrConflict = errors.New("Horário não está mais disponível")
)

// ErrDuplicateCode is returned by the store when a booking code is already taken.
var ErrDuplicateCode = errors.New("codigo_unico already exists")

var ErrCourtNotFound = errors.New("Quadra inválida")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError is a driver or connection failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
