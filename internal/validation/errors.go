package validation

import (
	"errors"
	"fmt"
)

// ErrValidation базовая ошибка валидации пользовательского ввода.
// Все ошибки пакета оборачивают её, поэтому проверка делается через errors.Is.
var ErrValidation = errors.New("validation failed")

// Error описывает нарушение правила для конкретного поля
type Error struct {
	Field   string // имя поля (title, date, time, email, password)
	Message string // человекочитаемое описание
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap позволяет errors.Is(err, ErrValidation)
func (e *Error) Unwrap() error {
	return ErrValidation
}

func fieldError(field, format string, args ...any) error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}
