package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(portfolioHandler *handlers.PortfolioHandler, insightsHandler *handlers.InsightsHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/dashboard", portfolioHandler.Dashboard)
		api.GET("/portfolio", portfolioHandler.Portfolio)

		api.POST("/periods", portfolioHandler.CreatePeriod)
		api.PUT("/periods/:id/sales", portfolioHandler.SetWeeklySales)
		api.PUT("/periods/:id/inventory", portfolioHandler.SetInventoryCost)
		api.PUT("/periods/:id/weeks", portfolioHandler.ResizeWeeks)
		api.PUT("/periods/:id/activate", portfolioHandler.ActivatePeriod)
		api.POST("/periods/:id/expenses", portfolioHandler.AddOtherExpense)
		api.DELETE("/periods/:id/expenses/:expenseID", portfolioHandler.RemoveOtherExpense)

		api.PUT("/fees", portfolioHandler.SetFees)

		api.POST("/staff", portfolioHandler.AddStaff)
		api.PUT("/staff/:id", portfolioHandler.UpdateStaff)
		api.DELETE("/staff/:id", portfolioHandler.RemoveStaff)

		api.POST("/personal-expenses", portfolioHandler.AddPersonalExpense)
		api.DELETE("/personal-expenses/:id", portfolioHandler.RemovePersonalExpense)
		api.GET("/personal-finances", portfolioHandler.PersonalFinances)

		api.GET("/annual-report", portfolioHandler.AnnualReport)
		api.POST("/annual-report/export", portfolioHandler.ExportAnnualReport)

		api.POST("/insights/cost-savings", insightsHandler.CostSavings)
		api.POST("/insights/focus-areas", insightsHandler.FocusAreas)
		api.POST("/insights/target-sales", insightsHandler.TargetSales)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
