package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/greeter/internal/configuration"
	"github.com/khedhrije/greeter/internal/ui/rest/handlers"
	"github.com/khedhrije/greeter/internal/ui/rest/middleware"
	"github.com/khedhrije/greeter/internal/ui/rest/router"
	"github.com/khedhrije/greeter/pkg/monitoring"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Bootstrap struct {
	Config *configuration.AppConfig
	Logger *zap.Logger
	Router *gin.Engine
}

func InitBootstrap() (Bootstrap, error) {
	if configuration.Config == nil {
		return Bootstrap{}, errors.New("configuration is nil")
	}
	return initBootstrap(configuration.Config)
}

// initBootstrap sets up the logger, handlers, metrics and the router.
func initBootstrap(cfg *configuration.AppConfig) (Bootstrap, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return Bootstrap{}, fmt.Errorf("build logger: %w", err)
	}
	logger = logger.With(zap.String("app", cfg.AppName), zap.String("version", cfg.AppVersion))

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := middleware.NewMetrics()
	r, err := router.CreateRouter(router.Deps{
		Logger:    logger,
		Checks:    monitoring.New(cfg),
		Greetings: handlers.NewGreeting(logger, metrics),
		Metrics:   metrics,
	}, router.Options{TrustedProxies: cfg.RestConfig.TrustedProxies})
	if err != nil {
		return Bootstrap{}, fmt.Errorf("create router: %w", err)
	}

	return Bootstrap{Config: cfg, Logger: logger, Router: r}, nil
}

// NewLogger builds a development logger locally and a JSON production
// logger elsewhere, at the configured level.
func NewLogger(cfg *configuration.AppConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	if cfg.IsLocal() {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

// Addr is the listen address for the REST server.
func (b Bootstrap) Addr() string {
	return net.JoinHostPort(b.Config.RestConfig.Host, strconv.Itoa(b.Config.RestConfig.Port))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (b Bootstrap) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    b.Addr(),
		Handler: b.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		b.Logger.Info("starting rest server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("rest server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	b.Logger.Info("shutting down rest server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), b.Config.RestConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
