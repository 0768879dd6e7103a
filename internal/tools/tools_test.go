package tools

import (
	"context"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/credit-calculator-go/internal/cache"
	"github.com/cloud-ru/credit-calculator-go/internal/calculations"
	"github.com/cloud-ru/credit-calculator-go/internal/config"
	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

func newTestService(c cache.Cache) *Service {
	cfg := &config.Config{MaxPrincipal: 1e9, MaxPayment: 1e8, MaxPeriods: 1200, MaxRate: 200}
	return NewService(cfg, noop.NewTracerProvider().Tracer("test"), c)
}

func TestServiceCalculate(t *testing.T) {
	s := newTestService(nil)

	result, err := s.Calculate(context.Background(), validators.LoanInputs{
		Scheme:    validators.SchemeAnnuity,
		Principal: validators.Int64(1000000),
		Periods:   validators.Int64(60),
		Interest:  validators.Float64(10),
	})
	require.NoError(t, err)
	assert.Equal(t, calculations.PaymentResult{Amount: 21248, Overpayment: 274880}, result)

	_, err = s.Calculate(context.Background(), validators.LoanInputs{
		Scheme:   validators.SchemeAnnuity,
		Interest: validators.Float64(10),
	})
	assert.ErrorIs(t, err, validators.ErrMissingValues)
}

func TestCreditCalculatorHandler(t *testing.T) {
	tests := []struct {
		name        string
		params      map[string]interface{}
		wantKind    string
		wantMessage string
		wantErr     error
	}{
		{
			name: "payment from json numbers",
			params: map[string]interface{}{
				"type": "annuity", "principal": 1000000.0, "periods": 60.0, "interest": 10.0,
			},
			wantKind:    "payment",
			wantMessage: "Your annuity payment = 21248!\nOverpayment = 274880",
		},
		{
			name: "principal from strings",
			params: map[string]interface{}{
				"type": "annuity", "payment": "8722", "periods": "120", "interest": "5.6",
			},
			wantKind:    "principal",
			wantMessage: "Your credit principal = 800019!\nOverpayment = 246621",
		},
		{
			name: "null counts as absent",
			params: map[string]interface{}{
				"type": "annuity", "principal": 500000.0, "payment": 23000.0, "interest": 7.8, "periods": nil,
			},
			wantKind:    "timeframe",
			wantMessage: "You need 2 years to repay this credit!\nOverpayment = 52000",
		},
		{
			name: "fractional periods",
			params: map[string]interface{}{
				"type": "diff", "principal": 1000.0, "periods": 1.5, "interest": 10.0,
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "unknown scheme",
			params: map[string]interface{}{
				"type": "balloon", "principal": 1000.0, "periods": 12.0, "interest": 10.0,
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "all five",
			params: map[string]interface{}{
				"type": "annuity", "principal": 1000.0, "periods": 12.0, "interest": 10.0, "payment": 100.0,
			},
			wantErr: validators.ErrTooManyValues,
		},
		{
			name: "periods over limit",
			params: map[string]interface{}{
				"type": "diff", "principal": 1000.0, "periods": 5000.0, "interest": 10.0,
			},
			wantErr: validators.ErrLimitExceeded,
		},
		{
			name: "never repaid",
			params: map[string]interface{}{
				"type": "annuity", "principal": 100000.0, "payment": 100.0, "interest": 12.0,
			},
			wantErr: calculations.ErrNeverRepaid,
		},
	}

	handler := CreditCalculatorHandler(newTestService(cache.NewMemoryCache(0, 0)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := handler(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			var resp struct {
				Kind    string `json:"kind"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(raw.(json.RawMessage), &resp))
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestCreditCalculatorHandlerUsesCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(0, 0)
	handler := CreditCalculatorHandler(newTestService(c))
	params := map[string]interface{}{
		"type": "diff", "principal": 500000.0, "periods": 8.0, "interest": 7.8,
	}
	key := cache.Key("calc", validators.Resolved{
		Scheme:    validators.SchemeDifferentiated,
		Target:    validators.TargetSchedule,
		Principal: 500000,
		Periods:   8,
		Interest:  7.8,
	})

	_, ok := c.Get(ctx, key)
	require.False(t, ok)

	first, err := handler(ctx, params)
	require.NoError(t, err)
	stored, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.JSONEq(t, string(first.(json.RawMessage)), stored)

	require.NoError(t, c.Set(ctx, key, `{"kind":"cached"}`))
	second, err := handler(ctx, params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"cached"}`, string(second.(json.RawMessage)))
}

func TestCompareSchemesHandler(t *testing.T) {
	handler := CompareSchemesHandler(newTestService(nil))

	raw, err := handler(context.Background(), map[string]interface{}{
		"principal": 1000000.0, "periods": 12.0, "interest": 12.0,
	})
	require.NoError(t, err)

	var resp calculations.ComparisonResult
	require.NoError(t, json.Unmarshal(raw.(json.RawMessage), &resp))
	assert.Equal(t, "differentiated", resp.CheaperScheme)
	assert.Equal(t, int64(1184), resp.Savings)

	_, err = handler(context.Background(), map[string]interface{}{
		"principal": 1000000.0, "periods": 12.0, "interest": 12.0, "payment": 5.0,
	})
	assert.ErrorIs(t, err, validators.ErrTooManyValues)

	_, err = handler(context.Background(), map[string]interface{}{
		"principal": 1000000.0, "interest": 12.0,
	})
	assert.ErrorIs(t, err, validators.ErrMissingValues)
}

func TestParseInputs(t *testing.T) {
	in, err := ParseInputs(map[string]interface{}{
		"type": "diff", "principal": "1000000", "interest": 7.8,
	})
	require.NoError(t, err)
	assert.Equal(t, validators.SchemeDifferentiated, in.Scheme)
	require.NotNil(t, in.Principal)
	assert.Equal(t, int64(1000000), *in.Principal)
	require.NotNil(t, in.Interest)
	assert.Equal(t, 7.8, *in.Interest)
	assert.Nil(t, in.Periods)
	assert.Nil(t, in.Payment)

}

func TestParseInputsRejects(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]interface{}
	}{
		{name: "not a number", params: map[string]interface{}{"principal": "lots"}},
		{name: "type not a string", params: map[string]interface{}{"type": 7.0}},
		{name: "fractional periods", params: map[string]interface{}{"periods": 2.5}},
		{name: "principal above int64", params: map[string]interface{}{"principal": 1.8446744073713648e19}},
		{name: "payment above int64 as string", params: map[string]interface{}{"payment": "1e30"}},
		{name: "periods below int64", params: map[string]interface{}{"periods": "-9223372036854775809"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseInputs(tt.params)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, in.Principal)
			assert.Nil(t, in.Payment)
			assert.Nil(t, in.Periods)
		})
	}
}

func TestParseInputsInt64Bounds(t *testing.T) {
	in, err := ParseInputs(map[string]interface{}{"principal": "9223372036854775807"})
	require.NoError(t, err)
	require.NotNil(t, in.Principal)
	assert.Equal(t, int64(math.MaxInt64), *in.Principal)
}
