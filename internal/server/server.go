/*
server.go - HTTP-роутер кредитного калькулятора

МАРШРУТЫ:
  POST /api/calculate   расчет недостающего параметра кредита
  POST /api/compare     сравнение аннуитетной и дифференцированной схем
  GET  /healthz         проверка живости
  GET  /metrics         метрики Prometheus

MIDDLEWARE:
  1. RequestID:  уникальный ID запроса
  2. RealIP
  3. Logger:     журнал запросов в zap
  4. Recoverer:  panic -> 500
  5. CORS
*/
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cloud-ru/credit-calculator-go/internal/config"
	"github.com/cloud-ru/credit-calculator-go/internal/logging"
	"github.com/cloud-ru/credit-calculator-go/internal/metrics"
	"github.com/cloud-ru/credit-calculator-go/internal/tools"
)

// NewRouter создает роутер со всеми маршрутами
func NewRouter(cfg *config.Config, svc *tools.Service) *chi.Mux {
	h := &Handler{
		calculate: tools.CreditCalculatorHandler(svc),
		compare:   tools.CompareSchemesHandler(svc),
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/compare", h.Compare)
	})

	return r
}

// requestLogger пишет каждый запрос в лог и считает его по маршруту
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		logging.Info("http request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
