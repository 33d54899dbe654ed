package handler

import (
	"errors"
	"net/http"

	"backend/internal/pricing"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	calculatorService service.CalculatorService
}

func NewCalculatorHandler(calculatorService service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService}
}

func (h *CalculatorHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/calculate", h.Calculate)
}

// Calculate runs one landed-cost profit calculation
// @Summary      Calculate profit
// @Description  Computes profit, margin and ROI for an eBay USA or Shopee listing with a full cost breakdown
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        request  body      pricing.CalculationRequest  true  "Calculation request"
// @Success      200      {object}  service.CalculationResponse
// @Failure      400      {object}  response.Response
// @Router       /api/calculate [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var req pricing.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.calculatorService.Calculate(c.Request.Context(), req)
	if err != nil {
		var vErr *pricing.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, response.Error(vErr.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}
