package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
	"github.com/SawSimonLinn/BizBoost/internal/repository/sheets"
	"github.com/SawSimonLinn/BizBoost/internal/service/portfolio"
)

// userIDHeader carries the identity resolved upstream. There is no real
// authentication here; the id only keys the stored portfolio and never enters
// the calculation.
const (
	userIDHeader  = "X-User-ID"
	defaultUserID = "demo"
)

func userID(c *gin.Context) string {
	if id := c.GetHeader(userIDHeader); id != "" {
		return id
	}
	return defaultUserID
}

// PortfolioHandler exposes the portfolio state and its field-level setters
// over HTTP.
type PortfolioHandler struct {
	svc      *portfolio.Service
	exporter sheets.Exporter
	logger   *zap.Logger
}

// NewPortfolioHandler constructs the HTTP handler adapter. A nil exporter
// disables the annual-report export route.
func NewPortfolioHandler(svc *portfolio.Service, exporter sheets.Exporter, logger *zap.Logger) *PortfolioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortfolioHandler{svc: svc, exporter: exporter, logger: logger}
}

func (h *PortfolioHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portfolio.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, portfolio.ErrPeriodNotFound),
		errors.Is(err, portfolio.ErrStaffNotFound),
		errors.Is(err, portfolio.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("portfolio operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Dashboard returns the active period's metrics, margins and the trend series.
func (h *PortfolioHandler) Dashboard(c *gin.Context) {
	dash, err := h.svc.Dashboard(c.Request.Context(), userID(c), c.Query("period"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Portfolio returns the full editable state.
func (h *PortfolioHandler) Portfolio(c *gin.Context) {
	state, err := h.svc.Portfolio(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type createPeriodRequest struct {
	Name  string `json:"name" binding:"required"`
	Weeks int    `json:"weeks" binding:"required"`
}

// CreatePeriod appends a new accounting period.
func (h *PortfolioHandler) CreatePeriod(c *gin.Context) {
	var req createPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	period, err := h.svc.CreatePeriod(c.Request.Context(), userID(c), req.Name, req.Weeks)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, period)
}

type weeklySalesRequest struct {
	WeeklySales []float64 `json:"weeklySales" binding:"required"`
}

// SetWeeklySales replaces a period's weekly sales figures.
func (h *PortfolioHandler) SetWeeklySales(c *gin.Context) {
	var req weeklySalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.SetWeeklySales(c.Request.Context(), userID(c), c.Param("id"), req.WeeklySales); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type inventoryRequest struct {
	Type  models.InventoryCostType `json:"type" binding:"required"`
	Value float64                  `json:"value"`
}

// SetInventoryCost updates a period's cost-of-goods policy.
func (h *PortfolioHandler) SetInventoryCost(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cost := models.InventoryCost{Type: req.Type, Value: req.Value}
	if err := h.svc.SetInventoryCost(c.Request.Context(), userID(c), c.Param("id"), cost); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type resizeWeeksRequest struct {
	Weeks int `json:"weeks" binding:"required"`
}

// ResizeWeeks changes a period's week count, redistributing the existing total.
func (h *PortfolioHandler) ResizeWeeks(c *gin.Context) {
	var req resizeWeeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.ResizeWeeks(c.Request.Context(), userID(c), c.Param("id"), req.Weeks); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type expenseRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
}

// AddOtherExpense attaches an ad-hoc expense line to a period.
func (h *PortfolioHandler) AddOtherExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	expense, err := h.svc.AddOtherExpense(c.Request.Context(), userID(c), c.Param("id"), req.Name, req.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// RemoveOtherExpense deletes an expense line from a period.
func (h *PortfolioHandler) RemoveOtherExpense(c *gin.Context) {
	if err := h.svc.RemoveOtherExpense(c.Request.Context(), userID(c), c.Param("id"), c.Param("expenseID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ActivatePeriod selects the dashboard's focus period.
func (h *PortfolioHandler) ActivatePeriod(c *gin.Context) {
	if err := h.svc.SetActivePeriod(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type feeConfigRequest struct {
	RoyaltyPercent *float64 `json:"royaltyPercent" binding:"required"`
}

// SetFees updates the royalty percentage.
func (h *PortfolioHandler) SetFees(c *gin.Context) {
	var req feeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.SetRoyaltyPercent(c.Request.Context(), userID(c), *req.RoyaltyPercent); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddStaff appends a roster line.
func (h *PortfolioHandler) AddStaff(c *gin.Context) {
	var req portfolio.StaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.AddStaff(c.Request.Context(), userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateStaff replaces an existing roster line.
func (h *PortfolioHandler) UpdateStaff(c *gin.Context) {
	var req portfolio.StaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.UpdateStaff(c.Request.Context(), userID(c), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// RemoveStaff drops a roster line.
func (h *PortfolioHandler) RemoveStaff(c *gin.Context) {
	if err := h.svc.RemoveStaff(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPersonalExpense appends an owner-side budget line.
func (h *PortfolioHandler) AddPersonalExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	expense, err := h.svc.AddPersonalExpense(c.Request.Context(), userID(c), req.Name, req.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// RemovePersonalExpense deletes an owner-side budget line.
func (h *PortfolioHandler) RemovePersonalExpense(c *gin.Context) {
	if err := h.svc.RemovePersonalExpense(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PersonalFinances returns the owner-side budget summary.
func (h *PortfolioHandler) PersonalFinances(c *gin.Context) {
	summary, err := h.svc.PersonalFinances(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AnnualReport returns per-period rows plus yearly totals.
func (h *PortfolioHandler) AnnualReport(c *gin.Context) {
	report, err := h.svc.AnnualReport(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportAnnualReport pushes the annual report to the configured spreadsheet.
func (h *PortfolioHandler) ExportAnnualReport(c *gin.Context) {
	if h.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "spreadsheet export is not configured"})
		return
	}

	uid := userID(c)
	report, err := h.svc.AnnualReport(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.exporter.ExportAnnualReport(c.Request.Context(), uid, report); err != nil {
		h.logger.Error("annual report export failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export report"})
		return
	}
	c.Status(http.StatusAccepted)
}
