package server

import (
	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/go-comments/handlers"
	"github.com/gogotex/gogotex/backend/go-comments/internal/comment/handler"
	"github.com/gogotex/gogotex/backend/go-comments/internal/comment/service"
	"github.com/gogotex/gogotex/backend/go-comments/internal/config"
	"github.com/gogotex/gogotex/backend/go-comments/pkg/metrics"
	"github.com/gogotex/gogotex/backend/go-comments/pkg/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine: global middleware, probes, API docs,
// metrics and the comments resource.
func NewRouter(cfg *config.Config, svc service.Service, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID(cfg.HTTP.RequestIDHeader))
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Server.ServiceName))
	}
	r.Use(middleware.CORS(cfg.HTTP.AllowOrigin))

	if cfg.Metrics.Enabled {
		reg := metrics.NewRegistry()
		metrics.RegisterCollectors(reg)
		httpMetrics := metrics.NewHTTPMetrics(reg, cfg.Server.ServiceName)
		r.Use(httpMetrics.Middleware())
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(httpMetrics.Handler()))
	}
	r.Use(middleware.RequestLogger(log))

	handlers.NewHealthHandler(map[string]handlers.Pinger{"store": svc}, log).Register(r)
	handlers.RegisterSwagger(r)
	handler.RegisterCommentRoutes(r, svc, log)
	return r
}
