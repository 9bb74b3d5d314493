package monitoring

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/greeter/internal/configuration"
)

// ====== Public surface ======

type Handler interface {
	// Basic
	Livez() gin.HandlerFunc
	Readyz() gin.HandlerFunc
	Healthz() gin.HandlerFunc
	Version() gin.HandlerFunc
	ServerInfo() gin.HandlerFunc

	// Checks
	Check() gin.HandlerFunc   // database
	Metrics() gin.HandlerFunc // runtime metrics
}

// New constructs a Handler reporting on cfg.
func New(cfg *configuration.AppConfig) Handler {
	return &handler{cfg: cfg, startTime: time.Now()}
}

// ====== Implementation ======

type handler struct {
	cfg       *configuration.AppConfig
	startTime time.Time
}

// run executes fn with a timeout and writes the uniform check payload.
func (h *handler) run(c *gin.Context, name string, timeout time.Duration, fn func(ctx context.Context) (Detail, error)) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	detail, err := fn(ctx)
	lat := time.Since(start).Milliseconds()

	if errors.Is(err, ErrNotConfigured) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "skipped",
			"name":      name,
			"latencyMs": lat,
			"detail":    detail,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"name":      name,
			"latencyMs": lat,
			"error":     err.Error(),
			"detail":    detail,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"name":      name,
		"latencyMs": lat,
		"detail":    detail,
	})
}

// --- basic health/info ---

func (h *handler) Livez() gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(http.StatusOK) }
}

func (h *handler) Readyz() gin.HandlerFunc {
	return func(c *gin.Context) {
		db := "skipped"
		if _, ok := h.dsn(); ok || h.cfg.DatabaseConfig.Addr != "" {
			db = "configured"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"checks": gin.H{"routes": "ok", "database": db},
		})
	}
}

func (h *handler) Healthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"version":  h.cfg.AppVersion,
			"revision": h.cfg.AppRevision,
			"builtAt":  h.cfg.AppBuiltAt,
		})
	}
}

func (h *handler) Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":  h.cfg.AppVersion,
			"revision": h.cfg.AppRevision,
			"builtAt":  h.cfg.AppBuiltAt,
		})
	}
}

func (h *handler) ServerInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "server-info", 800*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return ServerInformation(ctx, ServerInfoOptions{
				Name:      h.cfg.AppName,
				Version:   h.cfg.AppVersion,
				Revision:  h.cfg.AppRevision,
				BuiltAt:   h.cfg.AppBuiltAt,
				StartTime: h.startTime,
			})
		})
	}
}

// --- /api/check/database ---

func (h *handler) Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prefer a full DSN; fall back to TCP reachability on APP_DB_ADDR.
		if dsn, ok := h.dsn(); ok {
			h.run(c, "database", 2500*time.Millisecond, func(ctx context.Context) (Detail, error) {
				return DatabaseByDSN(ctx, dsn)
			})
			return
		}
		addr := h.cfg.DatabaseConfig.Addr
		h.run(c, "database", 1500*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return DatabaseByTCP(ctx, addr)
		})
	}
}

// --- /api/check/metrics ---

func (h *handler) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "metrics", 800*time.Millisecond, Metrics)
	}
}

func (h *handler) dsn() (string, bool) {
	db := h.cfg.DatabaseConfig
	return PostgresDSN(db.Host, db.Port, db.Name, db.Username, db.Password, db.SSL)
}
