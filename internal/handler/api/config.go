package api

import (
	"net/http"

	resdto "salon-site/internal/handler/dto/response"
	"salon-site/internal/handler/httperr"
	"salon-site/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves the public client bootstrap configuration the
// mini-app needs before it can start the LIFF handshake.
type ConfigHandler struct {
	liff config.LiffConfig
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{liff: cfg.Liff}
}

// @Summary Public client configuration
// @Tags config
// @Produce json
// @Success 200 {object} httperr.Response
// @Router /api/config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	httperr.JSON(c, http.StatusOK, resdto.ClientConfigResponse{LiffID: h.liff.ID})
}
