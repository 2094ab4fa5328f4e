package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ton-mini-app-backend/internal/common/logger"
	"ton-mini-app-backend/internal/features/app/models"
)

const (
	aliveMessage          = "TON Mini App Backend is working!"
	transactionCompleted  = "completed"
	termsOfServiceText    = "Terms of Service"
	privacyPolicyText     = "Privacy Policy"
	readinessCheckTimeout = 2 * time.Second
)

// HealthChecker is satisfied by the postgres and redis platform clients.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type AppHandler struct {
	manifest models.Manifest
	checks   map[string]HealthChecker
}

// NewAppHandler serves the static and stub endpoints. checks are pinged by
// /ready, keyed by dependency name.
func NewAppHandler(manifest models.Manifest, checks map[string]HealthChecker) *AppHandler {
	return &AppHandler{manifest: manifest, checks: checks}
}

func (h *AppHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/tonconnect-manifest.json", h.Manifest)
	router.GET("/", h.Root)
	router.GET("/terms", h.Terms)
	router.GET("/privacy", h.Privacy)
	router.POST("/api/check-transaction", h.CheckTransaction)

	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

// @Summary TON Connect manifest
// @Tags app
// @Produce json
// @Success 200 {object} models.Manifest
// @Router /tonconnect-manifest.json [get]
func (h *AppHandler) Manifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.manifest)
}

// @Summary Service status
// @Tags app
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router / [get]
func (h *AppHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "OK", Message: aliveMessage})
}

// @Summary Terms of service
// @Tags app
// @Produce plain
// @Success 200 {string} string
// @Router /terms [get]
func (h *AppHandler) Terms(c *gin.Context) {
	c.String(http.StatusOK, termsOfServiceText)
}

// @Summary Privacy policy
// @Tags app
// @Produce plain
// @Success 200 {string} string
// @Router /privacy [get]
func (h *AppHandler) Privacy(c *gin.Context) {
	c.String(http.StatusOK, privacyPolicyText)
}

// @Summary Check transaction
// @Description Reports every transaction as completed; no ledger lookup is made.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.CheckTransactionRequest true "Transaction"
// @Success 200 {object} models.CheckTransactionResponse
// @Router /api/check-transaction [post]
func (h *AppHandler) CheckTransaction(c *gin.Context) {
	var req models.CheckTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// тело не влияет на ответ
		logger.Debug().Err(err).Msg("Unreadable check-transaction body")
	}

	c.JSON(http.StatusOK, models.CheckTransactionResponse{
		Success:       true,
		Status:        transactionCompleted,
		TransactionID: req.TransactionID,
	})
}

func (h *AppHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (h *AppHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessCheckTimeout)
	defer cancel()

	for name, check := range h.checks {
		if err := check.HealthCheck(ctx); err != nil {
			logger.Warn().Err(err).Str("dependency", name).Msg("Readiness check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   name + " unavailable",
				"details": err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
	})
}
