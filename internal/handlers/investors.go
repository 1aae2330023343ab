package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/serialize"
	"github.com/yungbote/fundledger-backend/internal/services"
	"github.com/yungbote/fundledger-backend/internal/validation"
)

type InvestorHandler struct {
	log             *logger.Logger
	investorService services.InvestorService
}

func NewInvestorHandler(log *logger.Logger, investorService services.InvestorService) *InvestorHandler {
	return &InvestorHandler{
		log:             log.With("handler", "InvestorHandler"),
		investorService: investorService,
	}
}

// List godoc
// @Summary List investors
// @Tags investors
// @Produce json
// @Success 200 {array} serialize.InvestorResponse
// @Router /investors [get]
func (h *InvestorHandler) List(c *gin.Context) {
	investors, err := h.investorService.ListInvestors(c.Request.Context(), nil)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serialize.Investors(investors))
}

// Create godoc
// @Summary Create an investor
// @Description Email uniqueness is enforced by the store; duplicates answer 409.
// @Tags investors
// @Accept json
// @Produce json
// @Param request body validation.InvestorCreateRequest true "Investor"
// @Success 201 {object} serialize.InvestorResponse
// @Failure 400 {object} apperr.Envelope
// @Failure 409 {object} apperr.Envelope
// @Router /investors [post]
func (h *InvestorHandler) Create(c *gin.Context) {
	var req validation.InvestorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	investor, err := h.investorService.CreateInvestor(c.Request.Context(), nil, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serialize.Investor(investor))
}
