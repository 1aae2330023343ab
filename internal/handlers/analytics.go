package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/services"
)

type AnalyticsHandler struct {
	log              *logger.Logger
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(log *logger.Logger, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log.With("handler", "AnalyticsHandler"),
		analyticsService: analyticsService,
	}
}

// FundAnalytics godoc
// @Summary Fund analytics summary
// @Description Totals, utilization, per-investor and per-type breakdowns, top-5 ranking, and the management-fee figure for one fund.
// @Tags analytics
// @Produce json
// @Param fund_id path string true "Fund ID" format(uuid)
// @Success 200 {object} types.FundAnalytics
// @Failure 400 {object} apperr.Envelope
// @Failure 404 {object} apperr.Envelope
// @Router /funds/{fund_id}/analytics [get]
func (h *AnalyticsHandler) FundAnalytics(c *gin.Context) {
	fundID, ok := fundIDParam(c)
	if !ok {
		return
	}
	summary, err := h.analyticsService.FundAnalytics(c.Request.Context(), nil, fundID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
