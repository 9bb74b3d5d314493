// internal/ui/rest/router/router.go
package router

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/khedhrije/greeter/internal/ui/rest/handlers"
	"github.com/khedhrije/greeter/internal/ui/rest/middleware"
	"github.com/khedhrije/greeter/pkg/monitoring"
	"go.uber.org/zap"
)

type Options struct {
	TrustedProxies []string
}

// Deps groups what the registrars need.
type Deps struct {
	Logger    *zap.Logger
	Checks    monitoring.Handler
	Greetings handlers.Greeting
	Metrics   *middleware.Metrics
}

// CreateRouter builds the Gin engine and delegates route registration
// to the technical, functional and docs registrars.
func CreateRouter(deps Deps, opts ...Options) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Metrics sit outside recovery so panicking requests are still counted.
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument())
	}
	r.Use(ginzap.Ginzap(deps.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(deps.Logger, true))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if len(opts) > 0 && len(opts[0].TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(opts[0].TrustedProxies); err != nil {
			deps.Logger.Warn("ignoring trusted proxies", zap.Error(err))
		}
	} else {
		_ = r.SetTrustedProxies(nil)
	}

	r.NoRoute(handlers.NotFound())
	r.NoMethod(handlers.MethodNotAllowed())

	// Ops endpoints live under /api; greetings are served from the root.
	RegisterTechnicalRoutes(r.Group("/api"), deps.Checks)
	RegisterFunctionalRoutes(r, deps.Greetings)
	RegisterDocsRoutes(r)

	return r, nil
}
