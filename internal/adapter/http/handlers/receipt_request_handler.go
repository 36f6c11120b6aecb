package handlers

import (
	"fmt"
	"net/http"

	request "portfolio_backend/internal/adapter/http/dto/request"
	response "portfolio_backend/internal/adapter/http/dto/response"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pdfContentType = "application/pdf"

type ReceiptRequestHandler struct {
	usecase usecase.IReceiptRequestUseCase
	logger  *zap.Logger
}

func NewReceiptRequestHandler(uc usecase.IReceiptRequestUseCase, logger *zap.Logger) *ReceiptRequestHandler {
	return &ReceiptRequestHandler{usecase: uc, logger: logger}
}

// Submit godoc
// @Summary      Request a payment receipt
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      request.ReceiptRequestPayload  true  "Receipt request"
// @Success      201   {object}  response.SubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /receipt-requests [post]
func (h *ReceiptRequestHandler) Submit(c *gin.Context) {
	var payload request.ReceiptRequestPayload
	if !bindJSON(c, &payload) {
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, response.SubmissionResponse{ID: created.ID, Message: response.ReceiptReceivedMessage})
}

// List godoc
// @Summary      List receipt requests, newest first
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.ReceiptRequestResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /admin/receipt-requests [get]
func (h *ReceiptRequestHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReceiptRequests(items))
}

// Get godoc
// @Summary      Get a receipt request
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Receipt request id"
// @Success      200  {object}  response.ReceiptRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/receipt-requests/{id} [get]
func (h *ReceiptRequestHandler) Get(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReceiptRequest(item))
}

// UpdateStatus godoc
// @Summary      Change a receipt request status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                       true  "Receipt request id"
// @Param        body  body      request.StatusUpdateRequest  true  "New status"
// @Success      200   {object}  response.ReceiptRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /admin/receipt-requests/{id} [put]
func (h *ReceiptRequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReceiptRequest(updated))
}

// Delete godoc
// @Summary      Delete a receipt request
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Receipt request id"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/receipt-requests/{id} [delete]
func (h *ReceiptRequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Receipt request deleted successfully"})
}

// GeneratePDF godoc
// @Summary      Render the PDF receipt
// @Tags         admin
// @Produce      application/pdf
// @Security     Bearer
// @Param        id   path      string  true  "Receipt request id"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/receipt-requests/{id}/generate-pdf [post]
func (h *ReceiptRequestHandler) GeneratePDF(c *gin.Context) {
	item, pdf, err := h.usecase.GenerateReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", item.ID))
	c.Data(http.StatusOK, pdfContentType, pdf)
}
