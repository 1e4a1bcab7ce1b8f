package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/SavingsCoach/internal/api/response"
	"github.com/leon37/SavingsCoach/internal/service"
)

// InsightController serves AI insights and spending trends.
type InsightController struct {
	insightService *service.InsightService
}

func NewInsightController(insightService *service.InsightService) *InsightController {
	return &InsightController{
		insightService: insightService,
	}
}

// Insights returns model-written observations over a user's expenses.
// @Summary Financial insights
// @Description Generates insights, recommendations and top categories for the period
// @Tags Insights
// @Produce json
// @Param userId path string true "owner id"
// @Param startDate query string false "inclusive lower date bound"
// @Param endDate query string false "inclusive upper date bound"
// @Param timeframe query string false "label passed to the model, defaults to 'last 30 days'"
// @Success 200 {object} model.FinancialInsights
// @Failure 400 {object} apperr.Error
// @Router /insights/{userId} [get]
func (ctrl *InsightController) Insights(c *gin.Context) {
	insights, err := ctrl.insightService.Insights(c.Request.Context(),
		c.Param("userId"), c.Query("startDate"), c.Query("endDate"), c.Query("timeframe"))
	if err != nil {
		response.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// Trends returns per-period spending sums.
// @Summary Spending trends
// @Description Buckets the full expense history by day, week or month
// @Tags Insights
// @Produce json
// @Param userId path string true "owner id"
// @Param period query string false "day, week or month (default month)"
// @Success 200 {object} model.SpendingTrends
// @Failure 400 {object} apperr.Error
// @Router /insights/{userId}/trends [get]
func (ctrl *InsightController) Trends(c *gin.Context) {
	period := c.DefaultQuery("period", "month")

	trends, err := ctrl.insightService.Trends(c.Request.Context(), c.Param("userId"), period)
	if err != nil {
		response.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}
