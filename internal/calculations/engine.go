package calculations

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

var (
	// ErrNeverRepaid платеж не покрывает проценты, кредит не гасится
	ErrNeverRepaid = errors.New("payment does not cover monthly interest, credit is never repaid")
	// ErrUndefined формула не определена для этих параметров (например, ноль периодов)
	ErrUndefined = errors.New("result is undefined for the given parameters")
)

// MonthlyRate переводит годовую ставку в процентах в месячную долю
func MonthlyRate(annualPercent float64) float64 {
	return (annualPercent / 12) / 100
}

// Compute вызывает формулу, выбранную валидатором
func Compute(r validators.Resolved) (Result, error) {
	var (
		result Result
		err    error
	)

	switch r.Target {
	case validators.TargetPayment:
		result, err = AnnuityPayment(r.Principal, r.Periods, r.Interest)
	case validators.TargetPrincipal:
		result, err = AnnuityPrincipal(r.Payment, r.Periods, r.Interest)
	case validators.TargetTimeframe:
		result, err = AnnuityTimeframe(r.Principal, r.Payment, r.Interest)
	case validators.TargetSchedule:
		result, err = DifferentiatedSchedule(r.Principal, r.Periods, r.Interest)
	default:
		return nil, fmt.Errorf("unsupported calculation target %d", r.Target)
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}

// Calculate проверяет параметры и выполняет расчет
func Calculate(in validators.LoanInputs) (Result, error) {
	r, err := validators.Validate(in)
	if err != nil {
		return nil, err
	}
	return Compute(r)
}
