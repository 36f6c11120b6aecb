package handlers

import (
	"net/http"

	request "portfolio_backend/internal/adapter/http/dto/request"
	response "portfolio_backend/internal/adapter/http/dto/response"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	logger  *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, logger: logger}
}

// Login godoc
// @Summary      Exchange admin credentials for a session token
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.LoginResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if !bindJSON(c, &payload) {
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLoginResult(result))
}
