// Package server provides the HTTP surface of the quote bot: the Telegram
// webhook endpoint, the administrative quote CRUD API, health probes, and
// Prometheus metrics.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doston9471/telegram-quote-bot/internal/bot"
	"github.com/doston9471/telegram-quote-bot/internal/config"
	"github.com/doston9471/telegram-quote-bot/internal/database"
	"github.com/doston9471/telegram-quote-bot/internal/metrics"
)

// Deps provides dependencies for the HTTP server.
type Deps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Store     database.Store
	Processor *bot.Processor
	Metrics   *metrics.Metrics
	Registry  *prometheus.Registry
}

// New assembles the gin router and wraps it in an http.Server bound to the
// configured address.
func New(deps Deps) *http.Server {
	return &http.Server{
		Addr:         deps.Config.Server.Addr,
		Handler:      NewRouter(deps),
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
	}
}

// NewRouter configures all HTTP routes.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Config.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(deps.Logger))

	// Liveness probe - only checks that the process is serving.
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness probe - checks the quote store.
	router.GET("/readyz", func(c *gin.Context) {
		if err := deps.Store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	wh := webhookHandler{
		log:       deps.Logger.With("handler", "webhook"),
		processor: deps.Processor,
		metrics:   deps.Metrics,
	}
	router.POST("/telegram/webhook", wh.Handle)

	qh := quotesHandler{
		log:      deps.Logger.With("handler", "quotes"),
		store:    deps.Store,
		pageSize: deps.Config.Server.PageSize,
	}
	api := router.Group("/api/v1")
	{
		api.GET("/quotes", qh.List)
		api.POST("/quotes", qh.Create)
		api.GET("/quotes/:id", qh.Get)
		api.PUT("/quotes/:id", qh.Update)
		api.DELETE("/quotes/:id", qh.Delete)
	}

	return router
}
