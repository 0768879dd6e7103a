package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/credit-calculator-go/internal/config"
	"github.com/cloud-ru/credit-calculator-go/internal/logging"
	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

// Version версия сервиса в атрибутах ресурса
const Version = "1.0.0"

// ShutdownFunc сбрасывает и останавливает экспорт спанов
type ShutdownFunc func(ctx context.Context) error

// InitTracing инициализирует OpenTelemetry трейсинг и возвращает трейсер
func InitTracing(cfg *config.Config) (trace.Tracer, ShutdownFunc, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.OTELServiceName),
			semconv.ServiceVersionKey.String(Version),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdktrace.SpanExporter

	if cfg.OTELEndpoint != "" {
		// Используем OTLP HTTP экспортер
		exporter, err = otlptracehttp.New(context.Background(),
			otlptracehttp.WithEndpoint(cfg.OTELEndpoint),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		logging.Debug("OpenTelemetry OTLP export enabled", zap.String("endpoint", cfg.OTELEndpoint))
	} else {
		// Без endpoint спаны никуда не отправляются
		exporter = &noopExporter{}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return tp.Tracer(cfg.OTELServiceName), tp.Shutdown, nil
}

// noopExporter - пустой экспортер для локальной разработки
type noopExporter struct{}

func (e *noopExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return nil
}

func (e *noopExporter) Shutdown(ctx context.Context) error {
	return nil
}

// LoanAttributes атрибуты спана для проверенных параметров кредита.
// Поля, не участвующие в формуле, не записываются.
func LoanAttributes(r validators.Resolved) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("loan.scheme", string(r.Scheme)),
		attribute.String("loan.target", r.Target.String()),
		attribute.Float64("loan.interest", r.Interest),
	}
	if r.Target != validators.TargetPrincipal {
		attrs = append(attrs, attribute.Int64("loan.principal", r.Principal))
	}
	if r.Target != validators.TargetTimeframe {
		attrs = append(attrs, attribute.Int64("loan.periods", r.Periods))
	}
	if r.Target == validators.TargetPrincipal || r.Target == validators.TargetTimeframe {
		attrs = append(attrs, attribute.Int64("loan.payment", r.Payment))
	}
	return attrs
}
