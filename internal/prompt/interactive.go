package prompt

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

// ErrUnknownChoice ответ не совпал ни с одним пунктом меню
var ErrUnknownChoice = errors.New("unknown menu choice")

var (
	schemePrompt = New("Which type of debt would you like to calculate?",
		Choice{Key: "a", Description: "Annuity"},
		Choice{Key: "d", Description: "Differentiate"},
	)
	targetPrompt = New("What do you want to calculate?",
		Choice{Key: "n", Description: "Timeframe to payoff"},
		Choice{Key: "a", Description: "Monthly payment"},
		Choice{Key: "p", Description: "Credit principal"},
	)
	principalPrompt = New("Please enter the credit principal")
	paymentPrompt   = New("Please enter the monthly payment")
	periodsPrompt   = New("Please enter the number of pay cycles")
	interestPrompt  = New("Please enter the credit interest rate")
)

// Collect проводит диалог и возвращает собранные параметры.
// Формулы здесь не считаются: результат передается в validators.Validate.
func Collect(s *Session) (validators.LoanInputs, error) {
	var in validators.LoanInputs

	scheme, err := s.Ask(schemePrompt)
	if err != nil {
		return in, err
	}

	var fields []func() error
	switch scheme {
	case "a":
		in.Scheme = validators.SchemeAnnuity

		target, err := s.Ask(targetPrompt)
		if err != nil {
			return in, err
		}
		switch target {
		case "n":
			fields = []func() error{s.intField(principalPrompt, &in.Principal), s.intField(paymentPrompt, &in.Payment)}
		case "a":
			fields = []func() error{s.intField(principalPrompt, &in.Principal), s.intField(periodsPrompt, &in.Periods)}
		case "p":
			fields = []func() error{s.intField(paymentPrompt, &in.Payment), s.intField(periodsPrompt, &in.Periods)}
		default:
			return in, fmt.Errorf("%w: %q", ErrUnknownChoice, target)
		}
	case "d":
		in.Scheme = validators.SchemeDifferentiated
		fields = []func() error{s.intField(principalPrompt, &in.Principal), s.intField(periodsPrompt, &in.Periods)}
	default:
		return in, fmt.Errorf("%w: %q", ErrUnknownChoice, scheme)
	}

	fields = append(fields, s.floatField(interestPrompt, &in.Interest))
	for _, ask := range fields {
		if err := ask(); err != nil {
			return in, err
		}
	}

	return in, nil
}

func (s *Session) intField(p *Prompt, dst **int64) func() error {
	return func() error {
		v, err := s.AskInt(p)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func (s *Session) floatField(p *Prompt, dst **float64) func() error {
	return func() error {
		v, err := s.AskFloat(p)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}
