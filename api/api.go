package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/stats"
)

const (
	ServiceName         = "tradejournal"
	ServiceVersion      = "1.0.0"
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// SessionService is the part of *session.Session the HTTP handlers use.
type SessionService interface {
	AddTrade(journal.Draft) (journal.TradeRecord, error)
	Trades() ([]journal.TradeRecord, error)
	GetTrade(id string) (journal.TradeRecord, error)
	Snapshot() (stats.Snapshot, error)
	SetInitialBalance(float64) error
}

// Handler serves one journaling session over HTTP.
type Handler struct {
	session  SessionService
	currency string
	logger   *zap.Logger
}

func NewHandler(sess SessionService, currency string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		session:  sess,
		currency: currency,
		logger:   logger,
	}
}

// SetupRoutes configures all API routes
func (h *Handler) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(h.logger))
	router.Use(gin.Recovery())

	router.GET("/health", h.HealthCheck)
	router.GET("/trades", h.ListTrades)
	router.POST("/trades", h.AddTrade)
	router.GET("/trades/:id", h.GetTrade)
	router.GET("/stats", h.GetStats)
	router.GET("/equity", h.GetEquity)
	router.GET("/snapshot", h.GetSnapshot)
	router.PUT("/balance", h.SetBalance)
	router.GET("/chart", h.GetChart)

	return router
}

// NewServer wraps the routes in an http.Server with conservative timeouts.
func (h *Handler) NewServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h.SetupRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}
