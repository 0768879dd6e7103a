package tools

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

// ErrInvalidParameter параметр не удалось разобрать
var ErrInvalidParameter = errors.New("invalid parameter")

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// ParseInputs извлекает пять необязательных параметров из JSON-объекта.
// Отсутствующий ключ и null означают "не задано"; числа можно передавать строками.
func ParseInputs(params map[string]interface{}) (validators.LoanInputs, error) {
	var in validators.LoanInputs

	if raw, ok := params["type"]; ok && raw != nil {
		str, ok := raw.(string)
		if !ok {
			return in, fmt.Errorf("%w: type", ErrInvalidParameter)
		}
		scheme, err := validators.ParseScheme(str)
		if err != nil {
			return in, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
		in.Scheme = scheme
	}

	var err error
	if in.Principal, err = optionalInt(params, "principal"); err != nil {
		return in, err
	}
	if in.Interest, err = optionalFloat(params, "interest"); err != nil {
		return in, err
	}
	if in.Periods, err = optionalInt(params, "periods"); err != nil {
		return in, err
	}
	if in.Payment, err = optionalInt(params, "payment"); err != nil {
		return in, err
	}

	return in, nil
}

func optionalDecimal(params map[string]interface{}, key string) (*decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return nil, nil
	}

	var d decimal.Decimal
	switch v := raw.(type) {
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidParameter, key)
		}
		d = parsed
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidParameter, key)
	}
	return &d, nil
}

func optionalInt(params map[string]interface{}, key string) (*int64, error) {
	d, err := optionalDecimal(params, key)
	if err != nil || d == nil {
		return nil, err
	}
	if !d.IsInteger() {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidParameter, key)
	}
	// IntPart молча обрезает значения вне int64
	if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
		return nil, fmt.Errorf("%w: %s is out of range", ErrInvalidParameter, key)
	}
	v := d.IntPart()
	return &v, nil
}

func optionalFloat(params map[string]interface{}, key string) (*float64, error) {
	d, err := optionalDecimal(params, key)
	if err != nil || d == nil {
		return nil, err
	}
	v, _ := d.Float64()
	return &v, nil
}
