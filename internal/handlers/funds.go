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

type FundHandler struct {
	log         *logger.Logger
	fundService services.FundService
}

func NewFundHandler(log *logger.Logger, fundService services.FundService) *FundHandler {
	return &FundHandler{
		log:         log.With("handler", "FundHandler"),
		fundService: fundService,
	}
}

// List godoc
// @Summary List funds
// @Description All funds ordered by creation time ascending.
// @Tags funds
// @Produce json
// @Success 200 {array} serialize.FundResponse
// @Router /funds [get]
func (h *FundHandler) List(c *gin.Context) {
	funds, err := h.fundService.ListFunds(c.Request.Context(), nil)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serialize.Funds(funds))
}

// Get godoc
// @Summary Get a fund
// @Tags funds
// @Produce json
// @Param id path string true "Fund ID" format(uuid)
// @Success 200 {object} serialize.FundResponse
// @Failure 400 {object} apperr.Envelope
// @Failure 404 {object} apperr.Envelope
// @Router /funds/{id} [get]
func (h *FundHandler) Get(c *gin.Context) {
	fundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperr.Validation("id must be a valid UUID", []apperr.FieldIssue{
			{Field: "id", Rule: "uuid", Message: "must be a valid UUID"},
		}))
		return
	}
	fund, err := h.fundService.GetFund(c.Request.Context(), nil, fundID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serialize.Fund(fund))
}

// Create godoc
// @Summary Create a fund
// @Description Name uniqueness is enforced by the store; duplicates answer 409.
// @Tags funds
// @Accept json
// @Produce json
// @Param request body validation.FundCreateRequest true "Fund"
// @Success 201 {object} serialize.FundResponse
// @Failure 400 {object} apperr.Envelope
// @Failure 409 {object} apperr.Envelope
// @Router /funds [post]
func (h *FundHandler) Create(c *gin.Context) {
	var req validation.FundCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	fund, err := h.fundService.CreateFund(c.Request.Context(), nil, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serialize.Fund(fund))
}

// Update godoc
// @Summary Update a fund
// @Description Full replace of the mutable fields; the fund id travels in the body.
// @Tags funds
// @Accept json
// @Produce json
// @Param request body validation.FundUpdateRequest true "Fund"
// @Success 200 {object} serialize.FundResponse
// @Failure 400 {object} apperr.Envelope
// @Failure 404 {object} apperr.Envelope
// @Failure 409 {object} apperr.Envelope
// @Router /funds [put]
func (h *FundHandler) Update(c *gin.Context) {
	var req validation.FundUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	fund, err := h.fundService.UpdateFund(c.Request.Context(), nil, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serialize.Fund(fund))
}
