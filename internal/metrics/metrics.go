package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations счетчик расчетов по формуле и статусу
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_calculations_total",
			Help: "Количество расчетов по формулам",
		},
		[]string{"operation", "status"},
	)

	// ValidationErrors счетчик ошибок валидации по классу
	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_validation_errors_total",
			Help: "Количество отклоненных наборов параметров",
		},
		[]string{"kind"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"operation", "error_type"},
	)

	// CacheRequests обращения к кэшу результатов
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_cache_requests_total",
			Help: "Обращения к кэшу результатов",
		},
		[]string{"result"},
	)

	// HTTPRequests вызовы HTTP API
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_http_requests_total",
			Help: "Вызовы HTTP API",
		},
		[]string{"route", "code"},
	)
)
