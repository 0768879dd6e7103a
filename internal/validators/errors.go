package validators

import (
	"errors"
	"fmt"
)

// Kind классификация ошибки валидации
type Kind string

const (
	// KindTooManyValues заданы все параметры, вычислять нечего
	KindTooManyValues Kind = "too_many_values"
	// KindMissingValues задано меньше четырех параметров или они конфликтуют
	KindMissingValues Kind = "missing_values"
	// KindNegativeValue одно из числовых значений отрицательное
	KindNegativeValue Kind = "negative_value"
	// KindMissingParameter не задана схема или процентная ставка
	KindMissingParameter Kind = "missing_parameter"
)

// ValidationError ошибка проверки входных параметров
type ValidationError struct {
	Kind  Kind
	Field string
}

func newError(kind Kind, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field}
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("incorrect parameters: %s (%s)", e.Kind, e.Field)
	}
	return fmt.Sprintf("incorrect parameters: %s", e.Kind)
}

// Is сравнивает ошибки по классу, чтобы errors.Is работал с ErrXxx
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrTooManyValues    = newError(KindTooManyValues, "")
	ErrMissingValues    = newError(KindMissingValues, "")
	ErrNegativeValue    = newError(KindNegativeValue, "")
	ErrMissingParameter = newError(KindMissingParameter, "")
)

// KindOf возвращает класс ошибки валидации или пустую строку
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}

// IsValidation сообщает, является ли ошибка ошибкой валидации
func IsValidation(err error) bool {
	return KindOf(err) != ""
}
