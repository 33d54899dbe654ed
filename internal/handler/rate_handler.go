package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	rateService service.RateService
}

func NewRateHandler(rateService service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

func (h *RateHandler) RegisterRoutes(router *gin.RouterGroup) {
	rates := router.Group("/api/rates")
	{
		rates.GET("", h.ListRates)
		rates.POST("", h.UpsertRate)
	}
}

// ListRates returns the newest stored rate of every currency pair
// @Summary      List exchange rates
// @Tags         rates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/rates [get]
func (h *RateHandler) ListRates(c *gin.Context) {
	rates, err := h.rateService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(rates))
}

// UpsertRate stores a new exchange rate observation
// @Summary      Store exchange rate
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        request  body      service.UpsertRateRequest  true  "Rate to store"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/rates [post]
func (h *RateHandler) UpsertRate(c *gin.Context) {
	var req service.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	rate, err := h.rateService.Upsert(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(rate))
}
