package validators

import (
	"fmt"
	"strings"
)

// Scheme схема погашения кредита
type Scheme string

const (
	// SchemeAnnuity аннуитетные (равные) платежи
	SchemeAnnuity Scheme = "annuity"
	// SchemeDifferentiated дифференцированные (убывающие) платежи
	SchemeDifferentiated Scheme = "diff"
)

// ParseScheme разбирает название схемы; пустая строка означает отсутствие значения
func ParseScheme(value string) (Scheme, error) {
	switch s := Scheme(strings.ToLower(strings.TrimSpace(value))); s {
	case "", SchemeAnnuity, SchemeDifferentiated:
		return s, nil
	default:
		return "", fmt.Errorf("unknown scheme %q (expected %q or %q)", value, SchemeAnnuity, SchemeDifferentiated)
	}
}

// Target величина, которую нужно вычислить
type Target int

const (
	TargetPayment Target = iota + 1
	TargetPrincipal
	TargetTimeframe
	TargetSchedule
)

func (t Target) String() string {
	switch t {
	case TargetPayment:
		return "annuity_payment"
	case TargetPrincipal:
		return "annuity_principal"
	case TargetTimeframe:
		return "annuity_timeframe"
	case TargetSchedule:
		return "differentiated_schedule"
	default:
		return "unknown"
	}
}

// LoanInputs пять необязательных параметров расчета; nil означает "не задано"
type LoanInputs struct {
	Scheme    Scheme   `json:"type,omitempty"`
	Principal *int64   `json:"principal,omitempty"`
	Interest  *float64 `json:"interest,omitempty"`
	Periods   *int64   `json:"periods,omitempty"`
	Payment   *int64   `json:"payment,omitempty"`
}

// Int64 возвращает указатель на значение
func Int64(v int64) *int64 { return &v }

// Float64 возвращает указатель на значение
func Float64(v float64) *float64 { return &v }

const fieldCount = 5

func (in LoanInputs) present() int {
	n := 0
	if in.Scheme != "" {
		n++
	}
	if in.Principal != nil {
		n++
	}
	if in.Interest != nil {
		n++
	}
	if in.Periods != nil {
		n++
	}
	if in.Payment != nil {
		n++
	}
	return n
}

// firstNegative возвращает имя первого отрицательного числового поля
func (in LoanInputs) firstNegative() string {
	switch {
	case in.Principal != nil && *in.Principal < 0:
		return "principal"
	case in.Interest != nil && *in.Interest < 0:
		return "interest"
	case in.Periods != nil && *in.Periods < 0:
		return "periods"
	case in.Payment != nil && *in.Payment < 0:
		return "payment"
	}
	return ""
}

// Resolved проверенная комбинация параметров и выбранная формула.
// Поля, не участвующие в формуле, равны нулю.
type Resolved struct {
	Scheme    Scheme  `json:"type"`
	Target    Target  `json:"-"`
	Principal int64   `json:"principal"`
	Interest  float64 `json:"interest"`
	Periods   int64   `json:"periods"`
	Payment   int64   `json:"payment"`
}

// Validate классифицирует набор параметров. Правила проверяются по порядку,
// возвращается ошибка первого нарушенного правила.
func Validate(in LoanInputs) (Resolved, error) {
	present := in.present()
	if present == fieldCount {
		return Resolved{}, ErrTooManyValues
	}
	if present < fieldCount-1 {
		return Resolved{}, ErrMissingValues
	}
	if field := in.firstNegative(); field != "" {
		return Resolved{}, newError(KindNegativeValue, field)
	}
	if in.Scheme == "" {
		return Resolved{}, newError(KindMissingParameter, "type")
	}
	if in.Interest == nil {
		return Resolved{}, newError(KindMissingParameter, "interest")
	}

	r := Resolved{Scheme: in.Scheme, Interest: *in.Interest}

	switch in.Scheme {
	case SchemeAnnuity:
		// ровно одно из трех полей отсутствует
		switch {
		case in.Periods == nil:
			r.Target = TargetTimeframe
			r.Principal, r.Payment = *in.Principal, *in.Payment
		case in.Principal == nil:
			r.Target = TargetPrincipal
			r.Payment, r.Periods = *in.Payment, *in.Periods
		default:
			r.Target = TargetPayment
			r.Principal, r.Periods = *in.Principal, *in.Periods
		}
	case SchemeDifferentiated:
		if in.Principal == nil || in.Periods == nil {
			return Resolved{}, ErrMissingValues
		}
		r.Target = TargetSchedule
		r.Principal, r.Periods = *in.Principal, *in.Periods
	default:
		return Resolved{}, newError(KindMissingParameter, "type")
	}

	return r, nil
}
