package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is anything whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	deps         map[string]Pinger
	log          *zap.Logger
	started      time.Time
	checkTimeout time.Duration
}

// NewHealthHandler creates a HealthHandler; deps maps a dependency name
// (e.g. "store") to its checker.
func NewHealthHandler(deps map[string]Pinger, log *zap.Logger) *HealthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthHandler{
		deps:         deps,
		log:          log,
		started:      time.Now(),
		checkTimeout: 2 * time.Second,
	}
}

func (h *HealthHandler) Register(r gin.IRoutes) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

// Health always reports the process as alive.
func (h *HealthHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "healthy")
}

// Ready returns 200 only when every dependency answers its ping.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	ready := true
	deps := map[string]bool{}
	for name, p := range h.deps {
		err := p.Ping(ctx)
		deps[name] = err == nil
		if err != nil {
			ready = false
			h.log.Warn("readiness check failed", zap.String("dependency", name), zap.Error(err))
		}
	}

	uptime := time.Since(h.started).Round(time.Second).String()
	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
}
