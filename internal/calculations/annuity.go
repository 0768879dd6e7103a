package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/credit-calculator-go/pkg/utils"
)

// annuityFactor коэффициент аннуитета r(1+r)^n / ((1+r)^n - 1).
// При нулевой ставке вырождается в 1/n.
func annuityFactor(rate float64, periods int64) (float64, error) {
	var factor float64
	if rate == 0.0 {
		factor = 1.0 / float64(periods)
	} else {
		power := math.Pow(1.0+rate, float64(periods))
		// явное приведение запрещает fused multiply-add
		numerator := float64(rate * power)
		denominator := power - 1.0
		factor = numerator / denominator
	}
	if !utils.IsFinite(factor) || factor <= 0 {
		return 0, fmt.Errorf("annuity factor for %d periods: %w", periods, ErrUndefined)
	}
	return factor, nil
}

// AnnuityPayment рассчитывает ежемесячный аннуитетный платеж (округление вверх)
func AnnuityPayment(principal, periods int64, annualRatePercent float64) (PaymentResult, error) {
	factor, err := annuityFactor(MonthlyRate(annualRatePercent), periods)
	if err != nil {
		return PaymentResult{}, err
	}

	payment, ok := utils.FloatToInt64(math.Ceil(float64(principal) * factor))
	if !ok {
		return PaymentResult{}, fmt.Errorf("payment for principal %d: %w", principal, ErrUndefined)
	}
	paid, err := annuityTotal(payment, periods)
	if err != nil {
		return PaymentResult{}, err
	}

	return PaymentResult{
		Amount:      payment,
		Overpayment: utils.MaxInt64(0, paid-principal),
	}, nil
}

// AnnuityPrincipal рассчитывает сумму кредита по платежу и сроку
func AnnuityPrincipal(payment, periods int64, annualRatePercent float64) (PrincipalResult, error) {
	factor, err := annuityFactor(MonthlyRate(annualRatePercent), periods)
	if err != nil {
		return PrincipalResult{}, err
	}

	principal, ok := utils.FloatToInt64(math.RoundToEven(float64(payment) / factor))
	if !ok {
		return PrincipalResult{}, fmt.Errorf("principal for payment %d: %w", payment, ErrUndefined)
	}
	paid, err := annuityTotal(payment, periods)
	if err != nil {
		return PrincipalResult{}, err
	}

	return PrincipalResult{
		Amount:      principal,
		Overpayment: utils.MaxInt64(0, paid-principal),
	}, nil
}

// AnnuityTimeframe рассчитывает число месяцев до полного погашения
func AnnuityTimeframe(principal, payment int64, annualRatePercent float64) (TimeframeResult, error) {
	r := MonthlyRate(annualRatePercent)
	P := float64(principal)
	A := float64(payment)

	var n float64
	if r == 0.0 {
		if A <= 0 {
			return TimeframeResult{}, fmt.Errorf("payment %d: %w", payment, ErrNeverRepaid)
		}
		n = math.Ceil(P / A)
	} else {
		interest := float64(r * P)
		if A <= interest {
			return TimeframeResult{}, fmt.Errorf("payment %d ≤ monthly interest %.2f: %w", payment, interest, ErrNeverRepaid)
		}
		n = math.Ceil(math.Log(A/(A-interest)) / math.Log(1.0+r))
	}
	if !utils.IsFinite(n) || n > math.MaxInt32 {
		return TimeframeResult{}, fmt.Errorf("timeframe: %w", ErrUndefined)
	}

	periods := int64(n)
	paid, err := annuityTotal(payment, periods)
	if err != nil {
		return TimeframeResult{}, err
	}

	return TimeframeResult{
		Periods:     periods,
		Years:       periods / 12,
		Months:      periods % 12,
		Overpayment: utils.MaxInt64(0, paid-principal),
	}, nil
}

// annuityTotal сумма всех аннуитетных платежей
func annuityTotal(payment, periods int64) (int64, error) {
	paid, ok := utils.MulInt64(payment, periods)
	if !ok {
		return 0, fmt.Errorf("total of %d payments of %d overflows: %w", periods, payment, ErrUndefined)
	}
	return paid, nil
}
