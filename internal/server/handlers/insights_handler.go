package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/service/insights"
)

// InsightsHandler exposes the LLM advisory flows.
type InsightsHandler struct {
	svc    *insights.Service
	logger *zap.Logger
}

// NewInsightsHandler constructs the HTTP handler adapter.
func NewInsightsHandler(svc *insights.Service, logger *zap.Logger) *InsightsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightsHandler{svc: svc, logger: logger}
}

func (h *InsightsHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, insights.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai insights are not configured"})
		return
	}
	h.logger.Error("insight flow failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "unable to generate insight"})
}

// CostSavings returns cost-saving suggestions for the active period.
func (h *InsightsHandler) CostSavings(c *gin.Context) {
	result, err := h.svc.CostSavings(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FocusAreas returns a focus suggestion derived from the historical series.
func (h *InsightsHandler) FocusAreas(c *gin.Context) {
	result, err := h.svc.FocusAreas(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type targetSalesRequest struct {
	DesiredTakeHomePay *float64 `json:"desiredTakeHomePay" binding:"required"`
}

// TargetSales returns a suggested sales target for a desired take-home pay.
func (h *InsightsHandler) TargetSales(c *gin.Context) {
	var req targetSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.TargetSales(c.Request.Context(), userID(c), *req.DesiredTakeHomePay)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
