package handler

import (
	"errors"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configService service.ConfigService
}

func NewConfigHandler(configService service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

func (h *ConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	configs := router.Group("/api/configs")
	{
		configs.POST("/save", h.SaveConfig)
		configs.GET("", h.ListConfigs)
		configs.GET("/:name", h.LoadConfig)
	}
}

// SaveConfig upserts a named calculation preset
// @Summary      Save calculation preset
// @Tags         configs
// @Accept       json
// @Produce      json
// @Param        request  body      service.SaveConfigRequest  true  "Preset to save"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/configs/save [post]
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	var req service.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.configService.Save(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Message("Config '"+req.ConfigName+"' saved"))
}

// LoadConfig returns one preset by name
// @Summary      Load calculation preset
// @Tags         configs
// @Produce      json
// @Param        name  path      string  true  "Preset name"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  response.Response
// @Router       /api/configs/{name} [get]
func (h *ConfigHandler) LoadConfig(c *gin.Context) {
	name := c.Param("name")

	cfg, err := h.configService.Load(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Config '"+name+"' not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "config": cfg})
}

// ListConfigs returns presets newest-updated first
// @Summary      List calculation presets
// @Tags         configs
// @Produce      json
// @Param        platform  query     string  false  "Filter by platform (ebay_usa, shopee)"
// @Success      200       {object}  map[string]interface{}
// @Router       /api/configs [get]
func (h *ConfigHandler) ListConfigs(c *gin.Context) {
	platform := c.Query("platform")

	configs, err := h.configService.List(c.Request.Context(), platform)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "configs": configs})
}
