package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/credit-calculator-go/pkg/utils"
)

// MaxSchedulePeriods наибольшая длина графика дифференцированных платежей
const MaxSchedulePeriods = 1 << 20

// DifferentiatedSchedule рассчитывает график дифференцированного кредита.
// Каждый из periods платежей считается по замкнутой формуле, цикл всегда
// выполняется ровно periods раз.
func DifferentiatedSchedule(principal, periods int64, annualRatePercent float64) (ScheduleResult, error) {
	if periods < 0 || periods > MaxSchedulePeriods {
		return ScheduleResult{}, fmt.Errorf("schedule of %d periods: %w", periods, ErrUndefined)
	}

	r := MonthlyRate(annualRatePercent)
	P := float64(principal)
	n := float64(periods)

	payments := make([]int64, 0, periods)
	var totalPaid int64

	for m := int64(1); m <= periods; m++ {
		repaid, ok := utils.MulInt64(principal, m-1)
		if !ok {
			return ScheduleResult{}, fmt.Errorf("month %d: repaid principal overflows: %w", m, ErrUndefined)
		}
		remaining := P - float64(repaid)/n

		payment, ok := utils.FloatToInt64(math.Ceil(P/n + float64(r*remaining)))
		if !ok {
			return ScheduleResult{}, fmt.Errorf("month %d: payment out of range: %w", m, ErrUndefined)
		}
		if totalPaid, ok = utils.AddInt64(totalPaid, payment); !ok {
			return ScheduleResult{}, fmt.Errorf("month %d: total paid overflows: %w", m, ErrUndefined)
		}

		payments = append(payments, payment)
	}

	return ScheduleResult{
		Payments:    payments,
		TotalPaid:   totalPaid,
		Overpayment: utils.MaxInt64(0, totalPaid-principal),
	}, nil
}
