package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/credit-calculator-go/internal/cache"
	"github.com/cloud-ru/credit-calculator-go/internal/calculations"
	"github.com/cloud-ru/credit-calculator-go/internal/config"
	"github.com/cloud-ru/credit-calculator-go/internal/logging"
	"github.com/cloud-ru/credit-calculator-go/internal/metrics"
	"github.com/cloud-ru/credit-calculator-go/internal/output"
	"github.com/cloud-ru/credit-calculator-go/internal/tracing"
	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

// ToolHandler обработчик инструмента: параметры из JSON, результат для сериализации
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// CalculationResponse ответ на запрос расчета
type CalculationResponse struct {
	Kind    string              `json:"kind"`
	Result  calculations.Result `json:"result"`
	Message string              `json:"message"`
}

// Service выполняет расчеты с валидацией, метриками и трейсингом
type Service struct {
	cfg    *config.Config
	tracer trace.Tracer
	cache  cache.Cache
}

// NewService создает сервис; cache может быть nil
func NewService(cfg *config.Config, tracer trace.Tracer, c cache.Cache) *Service {
	return &Service{cfg: cfg, tracer: tracer, cache: c}
}

// Tracer возвращает трейсер сервиса
func (s *Service) Tracer() trace.Tracer {
	return s.tracer
}

// Resolve проверяет набор параметров
func (s *Service) Resolve(in validators.LoanInputs) (validators.Resolved, error) {
	r, err := validators.Validate(in)
	if err != nil {
		kind := validators.KindOf(err)
		metrics.ValidationErrors.WithLabelValues(string(kind)).Inc()
		logging.Debug("parameters rejected", zap.String("kind", string(kind)), zap.Error(err))
		return validators.Resolved{}, err
	}
	return r, nil
}

// Compute выполняет выбранную формулу
func (s *Service) Compute(ctx context.Context, r validators.Resolved) (calculations.Result, error) {
	operation := r.Target.String()

	_, span := s.tracer.Start(ctx, operation)
	defer span.End()

	span.SetAttributes(tracing.LoanAttributes(r)...)

	result, err := calculations.Compute(r)
	if err != nil {
		errorType := "undefined"
		if errors.Is(err, calculations.ErrNeverRepaid) {
			errorType = "never_repaid"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, errorType)
		metrics.Calculations.WithLabelValues(operation, "error").Inc()
		metrics.CalculationErrors.WithLabelValues(operation, errorType).Inc()
		logging.Warn("calculation failed", zap.String("operation", operation), zap.Error(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int64("overpayment", result.OverpaymentAmount()),
	)
	metrics.Calculations.WithLabelValues(operation, "success").Inc()
	logging.Debug("calculation finished",
		zap.String("operation", operation),
		zap.Int64("overpayment", result.OverpaymentAmount()),
	)

	return result, nil
}

// Calculate проверяет параметры и выполняет расчет
func (s *Service) Calculate(ctx context.Context, in validators.LoanInputs) (calculations.Result, error) {
	r, err := s.Resolve(in)
	if err != nil {
		return nil, err
	}
	return s.Compute(ctx, r)
}

// cached возвращает сохраненный ответ или вычисляет и сохраняет новый
func (s *Service) cached(ctx context.Context, key string, build func() (interface{}, error)) (json.RawMessage, error) {
	if s.cache != nil {
		if value, ok := s.cache.Get(ctx, key); ok {
			metrics.CacheRequests.WithLabelValues("hit").Inc()
			return json.RawMessage(value), nil
		}
		metrics.CacheRequests.WithLabelValues("miss").Inc()
	}

	response, err := build()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации ответа: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, string(data)); err != nil {
			// кэш не критичен
			logging.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return data, nil
}

// CreditCalculatorHandler обрабатывает запрос на расчет неизвестного параметра кредита
func CreditCalculatorHandler(s *Service) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		in, err := ParseInputs(params)
		if err != nil {
			return nil, err
		}

		r, err := s.Resolve(in)
		if err != nil {
			return nil, err
		}
		if err := validators.CheckLimits(s.cfg, r); err != nil {
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		return s.cached(ctx, cache.Key("calc", r), func() (interface{}, error) {
			result, err := s.Compute(ctx, r)
			if err != nil {
				return nil, err
			}
			return CalculationResponse{
				Kind:    result.Kind(),
				Result:  result,
				Message: output.Format(result),
			}, nil
		})
	}
}

// CompareSchemesHandler обрабатывает запрос на сравнение схем погашения
func CompareSchemesHandler(s *Service) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		in, err := ParseInputs(params)
		if err != nil {
			return nil, err
		}

		r, err := s.ResolveComparison(in)
		if err != nil {
			return nil, err
		}
		if err := validators.CheckLimits(s.cfg, r); err != nil {
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		return s.cached(ctx, cache.Key("compare", r), func() (interface{}, error) {
			return s.Compare(ctx, r)
		})
	}
}

// ResolveComparison проверяет параметры сравнения: сумма, срок и ставка.
// Схема не нужна, поэтому проверка идет через правила для дифференцированной схемы.
func (s *Service) ResolveComparison(in validators.LoanInputs) (validators.Resolved, error) {
	if in.Payment != nil {
		return validators.Resolved{}, s.reject(validators.ErrTooManyValues)
	}
	in.Scheme = validators.SchemeDifferentiated
	return s.Resolve(in)
}

func (s *Service) reject(err error) error {
	metrics.ValidationErrors.WithLabelValues(string(validators.KindOf(err))).Inc()
	return err
}

// Compare сравнивает схемы для проверенных параметров
func (s *Service) Compare(ctx context.Context, r validators.Resolved) (*calculations.ComparisonResult, error) {
	const operation = "compare_schemes"

	_, span := s.tracer.Start(ctx, operation)
	defer span.End()

	span.SetAttributes(
		attribute.Int64("loan.principal", r.Principal),
		attribute.Float64("loan.interest", r.Interest),
		attribute.Int64("loan.periods", r.Periods),
	)

	result, err := calculations.CompareSchemes(r.Principal, r.Periods, r.Interest)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "undefined")
		metrics.Calculations.WithLabelValues(operation, "error").Inc()
		metrics.CalculationErrors.WithLabelValues(operation, "undefined").Inc()
		return nil, err
	}

	span.SetAttributes(attribute.String("cheaper_scheme", result.CheaperScheme))
	metrics.Calculations.WithLabelValues(operation, "success").Inc()

	return result, nil
}
