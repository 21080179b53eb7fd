package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/ameya-jarvis-07/Potholes-Detection/pipeline"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/config"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/inference"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// Options configures the HTTP router builder.
type Options struct {
	CfgSvc       config.IService
	InferenceSvc inference.IService
	Tally        *pipeline.Tally
	Events       chan<- pipeline.PredictionEvent
}

// NewRouter builds the gin engine with recovery, request id, trace context,
// logging and CORS middlewares and registers the routes.
func NewRouter(opts Options) (*gin.Engine, error) {
	if opts.CfgSvc == nil {
		return nil, xerrors.New("http router requires a config service")
	}
	if opts.InferenceSvc == nil {
		return nil, xerrors.New("http router requires an inference service")
	}
	if opts.Tally == nil {
		opts.Tally = pipeline.NewTally("http")
	}

	switch mode := opts.CfgSvc.GetGinMode(); mode {
	case gin.DebugMode, gin.TestMode, gin.ReleaseMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(traceContextMiddleware())
	engine.Use(loggingMiddleware())

	origins := opts.CfgSvc.GetCorsOrigins()
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader, "traceparent"},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	engine.Use(cors.New(corsCfg))

	engine.POST("/predict", HandlePredict(opts.InferenceSvc, opts.Events, opts.CfgSvc.GetMaxBodyBytes()))
	engine.GET("/healthz", handleHealth)
	engine.GET("/stats", HandleStats(opts.Tally))

	return engine, nil
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Picks up a W3C traceparent from the caller so log lines can be joined
// with the caller's trace.
func traceContextMiddleware() gin.HandlerFunc {
	propagator := propagation.TraceContext{}
	return func(c *gin.Context) {
		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String(requestIDKey, c.GetString(requestIDKey)),
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			attrs = append(attrs,
				slog.String("traceId", sc.TraceID().String()),
				slog.String("spanId", sc.SpanID().String()),
			)
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			lgr.Logger.Error("http request", attrs...)
			return
		}
		lgr.Logger.Info("http request", attrs...)
	}
}
