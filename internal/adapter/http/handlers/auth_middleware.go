package handlers

import (
	"strings"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

const adminSessionKey = "admin_session"

// RequireAdmin rejects the request with 401 unless it carries a valid
// "Authorization: Bearer <token>" header.
func RequireAdmin(uc usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		session, err := uc.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := mapError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(adminSessionKey, session)
		c.Next()
	}
}

// AdminSession returns the session RequireAdmin stored on the context.
func AdminSession(c *gin.Context) (entities.AdminSession, bool) {
	v, ok := c.Get(adminSessionKey)
	if !ok {
		return entities.AdminSession{}, false
	}
	session, ok := v.(entities.AdminSession)
	return session, ok
}
