// Package web is the HTTP boundary of the console: route registration,
// form handling, and fragment rendering. Every console failure is
// converted to a rendered error fragment here; nothing escapes to the
// framework.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/kvadmin/internal/auth"
	"github.com/danmuck/kvadmin/internal/console"
	"github.com/danmuck/kvadmin/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config configures the HTTP surface around one console instance.
type Config struct {
	Name        string
	Addr        string
	BasePath    string
	CorsOrigins []string
	AuthToken   string
}

// Server binds one console to a gin engine.
type Server struct {
	cfg      Config
	console  *console.Console
	router   *gin.Engine
	appeared time.Time
}

func New(cfg Config, cons *console.Console) *Server {
	observability.RegisterMetrics()
	if strings.TrimSpace(cfg.BasePath) == "" {
		cfg.BasePath = "/console"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", auth.HeaderToken},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	return &Server{
		cfg:      cfg,
		console:  cons,
		router:   r,
		appeared: time.Now(),
	}
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.appeared).String(),
			"component": s.cfg.Name,
			"version":   "0.0.1",
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"uptime":    time.Since(s.appeared).String(),
			"component": s.cfg.Name,
			"version":   "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes := s.router.Group(s.cfg.BasePath)
	if s.cfg.AuthToken != "" {
		routes.Use(auth.TokenMiddleware(auth.StaticToken{Token: s.cfg.AuthToken}))
	}
	routes.GET("", s.handleConsolePage)
	routes.POST("", s.handleConsoleSubmit)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			out = append(out, origin)
		}
	}
	if len(out) == 0 {
		out = append(out, "http://localhost:3000")
	}
	return out
}
