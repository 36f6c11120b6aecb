package handlers

import (
	"net/http"

	response "portfolio_backend/internal/adapter/http/dto/response"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	logger  *zap.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, logger: logger}
}

// Summary godoc
// @Summary      Admin dashboard counters
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
