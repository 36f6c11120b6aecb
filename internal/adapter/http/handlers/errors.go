package handlers

import (
	"errors"
	"io"
	"net/http"

	"portfolio_backend/internal/infrastructure/auth"
	"portfolio_backend/internal/usecase"
	"portfolio_backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Request body must be a JSON object", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// bindJSON decodes the request body into dst and writes INVALID_PAYLOAD when
// it is not JSON. An empty body leaves dst zero, so validation still reports
// each missing field.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return false
	}
	return true
}

// mapError is the only place use case errors become HTTP statuses.
func mapError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Error(), err, http.StatusBadRequest).
			WithFields(verr.MissingFields, verr.InvalidFields)
	case errors.Is(err, usecase.ErrInvalidContactID),
		errors.Is(err, usecase.ErrInvalidReceiptRequestID),
		errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRole):
		return pkg.NewDomainError("UNAUTHORIZED", "Invalid or expired token", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotProvisioned):
		return pkg.NewDomainError("ADMIN_NOT_PROVISIONED", "Admin credentials not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrAdminMisconfigured):
		return pkg.NewDomainError("ADMIN_MISCONFIGURED", "Admin credentials are incomplete", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceiptRequestNotFound):
		return pkg.NewDomainErrorSimple("RECEIPT_REQUEST_NOT_FOUND", "Receipt request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChatSessionNotFound):
		return pkg.NewDomainErrorSimple("CHAT_SESSION_NOT_FOUND", "Chat session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError logs server side failures with their cause and writes the
// scrubbed envelope.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("[http][handler] request failed",
			zap.String("code", appErr.Code),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
