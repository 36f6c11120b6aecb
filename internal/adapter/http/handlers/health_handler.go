package handlers

import (
	"net/http"

	response "portfolio_backend/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Liveness probe
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Message: "Server is running"})
}
