package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/fundledger-backend/internal/apperr"
	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/serialize"
	"github.com/yungbote/fundledger-backend/internal/services"
	"github.com/yungbote/fundledger-backend/internal/validation"
)

type InvestmentHandler struct {
	log               *logger.Logger
	investmentService services.InvestmentService
}

func NewInvestmentHandler(log *logger.Logger, investmentService services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		log:               log.With("handler", "InvestmentHandler"),
		investmentService: investmentService,
	}
}

// ListForFund godoc
// @Summary List a fund's investments
// @Description Ordered by investment date ascending.
// @Tags investments
// @Produce json
// @Param fund_id path string true "Fund ID" format(uuid)
// @Success 200 {array} serialize.InvestmentResponse
// @Failure 400 {object} apperr.Envelope
// @Failure 404 {object} apperr.Envelope
// @Router /funds/{fund_id}/investments [get]
func (h *InvestmentHandler) ListForFund(c *gin.Context) {
	fundID, ok := fundIDParam(c)
	if !ok {
		return
	}
	investments, err := h.investmentService.ListForFund(c.Request.Context(), nil, fundID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serialize.Investments(investments))
}

// Create godoc
// @Summary Record an investment into a fund
// @Description The fund is checked before the investor, so a missing fund wins when both ids are unknown.
// @Tags investments
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID" format(uuid)
// @Param request body validation.InvestmentCreateRequest true "Investment"
// @Success 201 {object} serialize.InvestmentResponse
// @Failure 400 {object} apperr.Envelope
// @Failure 404 {object} apperr.Envelope
// @Router /funds/{fund_id}/investments [post]
func (h *InvestmentHandler) Create(c *gin.Context) {
	fundID, ok := fundIDParam(c)
	if !ok {
		return
	}
	var req validation.InvestmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), nil, fundID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serialize.Investment(investment))
}

// fundIDParam reads the fund id from the shared ":id" segment of the nested
// fund routes.
func fundIDParam(c *gin.Context) (uuid.UUID, bool) {
	fundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperr.Validation("fund_id must be a valid UUID", []apperr.FieldIssue{
			{Field: "fund_id", Rule: "uuid", Message: "must be a valid UUID"},
		}))
		return uuid.Nil, false
	}
	return fundID, true
}
