package handlers

import (
	"net/http"

	request "portfolio_backend/internal/adapter/http/dto/request"
	response "portfolio_backend/internal/adapter/http/dto/response"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the public contact form and the admin inquiry pages.
type ContactHandler struct {
	usecase usecase.IContactInquiryUseCase
	logger  *zap.Logger
}

func NewContactHandler(uc usecase.IContactInquiryUseCase, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{usecase: uc, logger: logger}
}

// Submit godoc
// @Summary      Submit a contact inquiry
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      request.ContactInquiryRequest  true  "Inquiry"
// @Success      201   {object}  response.SubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var payload request.ContactInquiryRequest
	if !bindJSON(c, &payload) {
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, response.SubmissionResponse{ID: created.ID, Message: response.ContactReceivedMessage})
}

// List godoc
// @Summary      List contact inquiries, newest first
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        inquiryType  query     string  false  "Only this inquiry type"
// @Success      200          {array}   response.ContactInquiryResponse
// @Failure      401          {object}  pkg.HTTPError
// @Router       /admin/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("inquiryType"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContactInquiries(items))
}

// Get godoc
// @Summary      Get a contact inquiry
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Inquiry id"
// @Success      200  {object}  response.ContactInquiryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/contacts/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContactInquiry(item))
}

// UpdateStatus godoc
// @Summary      Change a contact inquiry status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                       true  "Inquiry id"
// @Param        body  body      request.StatusUpdateRequest  true  "New status"
// @Success      200   {object}  response.ContactInquiryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /admin/contacts/{id} [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContactInquiry(updated))
}

// Delete godoc
// @Summary      Delete a contact inquiry
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Inquiry id"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Contact inquiry deleted successfully"})
}
