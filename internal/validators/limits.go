package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/credit-calculator-go/internal/config"
	"github.com/cloud-ru/credit-calculator-go/pkg/utils"
)

// ErrLimitExceeded значение вне допустимого для сервиса диапазона
var ErrLimitExceeded = errors.New("limit exceeded")

// ValidatePositiveNumber проверяет, что число конечное и не превышает максимум
func ValidatePositiveNumber(name string, value float64, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом: %w", name, ErrLimitExceeded)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%.0f): %w", name, maxInclusive, ErrLimitExceeded)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число не превышает максимум
func ValidateIntRange(name string, value int64, maxInclusive int64) error {
	if value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть ≤ %d: %w", name, maxInclusive, ErrLimitExceeded)
	}
	return nil
}

// CheckLimits применяет ограничения из конфигурации к уже проверенным параметрам.
// Вызывается только на границе сервиса, после Validate.
func CheckLimits(cfg *config.Config, r Resolved) error {
	if err := ValidatePositiveNumber("principal", float64(r.Principal), cfg.MaxPrincipal); err != nil {
		return err
	}
	if err := ValidatePositiveNumber("payment", float64(r.Payment), cfg.MaxPayment); err != nil {
		return err
	}
	if err := ValidatePositiveNumber("interest", r.Interest, cfg.MaxRate); err != nil {
		return err
	}
	return ValidateIntRange("periods", r.Periods, int64(cfg.MaxPeriods))
}
