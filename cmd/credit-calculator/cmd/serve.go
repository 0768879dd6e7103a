package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/credit-calculator-go/internal/cache"
	"github.com/cloud-ru/credit-calculator-go/internal/config"
	"github.com/cloud-ru/credit-calculator-go/internal/logging"
	"github.com/cloud-ru/credit-calculator-go/internal/server"
	"github.com/cloud-ru/credit-calculator-go/internal/tools"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Start the HTTP API.

Routes:
  POST /api/calculate  {"type":"annuity","principal":1000000,"periods":60,"interest":10}
  POST /api/compare    {"principal":1000000,"periods":12,"interest":12}
  GET  /healthz
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides PORT)")
	return cmd
}

// newCache выбирает Redis, если он задан и доступен, иначе кэш в памяти
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries), func() {}
	}

	rc := cache.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logging.Warn("redis unavailable, using in-memory cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = rc.Close()
		return cache.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries), func() {}
	}
	logging.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	return rc, func() { _ = rc.Close() }
}

func (a *app) serve(ctx context.Context) error {
	c, closeCache := newCache(ctx, a.cfg)
	defer closeCache()

	svc := tools.NewService(a.cfg, a.service.Tracer(), c)

	srv := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      server.NewRouter(a.cfg, svc),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info("credit calculator listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logging.Info("shutting down server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
