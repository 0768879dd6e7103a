// Package output формирует текстовые сообщения калькулятора по результатам расчета.
package output

import (
	"fmt"
	"strings"

	"github.com/cloud-ru/credit-calculator-go/internal/calculations"
	"github.com/cloud-ru/credit-calculator-go/pkg/utils"
)

// IncorrectParameters единственное сообщение для любой ошибки расчета
const IncorrectParameters = "Incorrect parameters"

// Format выводит результат в формате сообщений калькулятора
func Format(result calculations.Result) string {
	var b strings.Builder

	switch r := result.(type) {
	case calculations.PaymentResult:
		fmt.Fprintf(&b, "Your annuity payment = %d!", r.Amount)
	case calculations.PrincipalResult:
		fmt.Fprintf(&b, "Your credit principal = %d!", r.Amount)
	case calculations.TimeframeResult:
		b.WriteString(timeframe(r.Years, r.Months))
	case calculations.ScheduleResult:
		for i, p := range r.Payments {
			fmt.Fprintf(&b, "Month %d: paid out %d\n", i+1, p)
		}
	default:
		return IncorrectParameters
	}

	if o := result.OverpaymentAmount(); o > 0 {
		fmt.Fprintf(&b, "\nOverpayment = %d", o)
	}
	return b.String()
}

func timeframe(years, months int64) string {
	var b strings.Builder
	b.WriteString("You need ")
	if years > 0 {
		fmt.Fprintf(&b, "%d %s ", years, utils.Pluralize("year", "years", years))
	}
	if years > 0 && months > 0 {
		b.WriteString("and ")
	}
	if months > 0 {
		fmt.Fprintf(&b, "%d %s ", months, utils.Pluralize("month", "months", months))
	}
	b.WriteString("to repay this credit!")
	return b.String()
}

// Message выводит результат или, если задан err, общее сообщение об ошибке
func Message(result calculations.Result, err error) string {
	if err != nil || result == nil {
		return IncorrectParameters
	}
	return Format(result)
}
