package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cropsolve/cropsolve/runner"
)

// Config tunes a Server. The zero value works: no scenario roots, no
// solve cap, a silent logger, the process-global metrics.
type Config struct {
	// ScenarioRoots lists the directories the scenarios endpoint may
	// read. The first entry is the default when the query names none;
	// an empty list disables the endpoint.
	ScenarioRoots []string

	// TimeLimitCap bounds the per-request solve time limit. Requests
	// asking for more, or for nothing, get the cap. Zero leaves the
	// limit to the solve defaults.
	TimeLimitCap time.Duration

	// Logger receives one line per request plus handler diagnostics.
	// Nil means silent.
	Logger *zap.Logger

	// Metrics is the gatherer behind /metrics. Nil falls back to
	// prometheus.DefaultGatherer.
	Metrics prometheus.Gatherer
}

// Server routes HTTP traffic onto a runner pool.
type Server struct {
	cfg    Config
	pool   *runner.Pool
	engine *gin.Engine
}

// New wires all routes onto a release-mode gin engine. The pool is
// shared with the caller, who remains responsible for shutting it down.
func New(pool *runner.Pool, cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = prometheus.DefaultGatherer
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{cfg: cfg, pool: pool, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.requestLog())
	s.routes()

	return s
}

// Handler returns the routed engine, ready for an http.Server or an
// httptest request.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	api := s.engine.Group("/api/v1")
	api.POST("/solve", s.handleSolve)
	api.POST("/validate", s.handleValidate)
	api.GET("/tasks/:id", s.handleTaskStatus)
	api.DELETE("/tasks/:id", s.handleTaskCancel)
	api.GET("/tasks/:id/solution", s.handleTaskSolution)
	api.GET("/scenarios", s.handleScenarios)
	api.GET("/samples", s.handleSamples)
	api.POST("/samples/:name/solve", s.handleSampleSolve)

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.cfg.Metrics, promhttp.HandlerOpts{})))
}

// requestLog emits one access line per request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.cfg.Logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
