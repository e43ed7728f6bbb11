package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/report"
)

// TradeRequest is the entry form as JSON. result may be sent as a number
// or as a numeric string.
type TradeRequest struct {
	Date      string      `json:"date"`
	Pair      string      `json:"pair"`
	Direction string      `json:"direction"`
	Result    json.Number `json:"result"`
	Notes     string      `json:"notes"`
}

type BalanceRequest struct {
	InitialBalance *float64 `json:"initialBalance"`
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   ServiceVersion,
	})
}

// ListTrades handles GET /trades
func (h *Handler) ListTrades(c *gin.Context) {
	trades, err := h.session.Trades()
	if err != nil {
		h.handleError(c, err)
		return
	}
	if trades == nil {
		trades = []journal.TradeRecord{}
	}
	c.JSON(http.StatusOK, trades)
}

// AddTrade handles POST /trades
func (h *Handler) AddTrade(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.session.AddTrade(journal.Draft{
		Date:      req.Date,
		Pair:      req.Pair,
		Direction: req.Direction,
		Result:    req.Result.String(),
		Notes:     req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GetTrade handles GET /trades/:id
func (h *Handler) GetTrade(c *gin.Context) {
	rec, err := h.session.GetTrade(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetStats handles GET /stats
func (h *Handler) GetStats(c *gin.Context) {
	snap, err := h.session.Snapshot()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap.Summary)
}

// GetEquity handles GET /equity
func (h *Handler) GetEquity(c *gin.Context) {
	snap, err := h.session.Snapshot()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap.Curve)
}

// GetSnapshot handles GET /snapshot
func (h *Handler) GetSnapshot(c *gin.Context) {
	snap, err := h.session.Snapshot()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"currency": h.currency,
		"snapshot": snap,
	})
}

// SetBalance handles PUT /balance
func (h *Handler) SetBalance(c *gin.Context) {
	var req BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.InitialBalance == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "initialBalance is required"})
		return
	}
	if err := h.session.SetInitialBalance(*req.InitialBalance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.GetSnapshot(c)
}

// GetChart handles GET /chart
func (h *Handler) GetChart(c *gin.Context) {
	snap, err := h.session.Snapshot()
	if err != nil {
		h.handleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.RenderEquityChart(&buf, snap); err != nil {
		h.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// handleError maps journal errors onto HTTP status codes and logs the
// rest as internal errors.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, journal.ErrInvalidResult),
		errors.Is(err, journal.ErrInvalidDirection),
		errors.Is(err, journal.ErrInvalidDate),
		errors.Is(err, journal.ErrAmbiguousTradeID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, journal.ErrTradeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.logger.Error("API error",
		zap.String("request_id", c.GetString(RequestIDContextKey)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
