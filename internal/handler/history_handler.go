package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService service.HistoryService
}

func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/history", h.GetHistory)
}

// GetHistory retrieves recent calculation records, newest first
// @Summary      Get calculation history
// @Description  Paginated append-only record of every calculation performed
// @Tags         history
// @Produce      json
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Number of items per page (default 20)"
// @Param        platform  query     string  false  "Filter by platform (ebay_usa, shopee)"
// @Success      200       {object}  response.Response
// @Router       /api/history [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	p := pagination.Parse(c)
	platform := c.Query("platform")

	records, total, err := h.historyService.GetHistory(c.Request.Context(), p.Page, p.Limit, platform)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to retrieve calculation history: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]interface{}{
		"records": records,
		"total":   total,
		"page":    p.Page,
		"limit":   p.Limit,
	}))
}
