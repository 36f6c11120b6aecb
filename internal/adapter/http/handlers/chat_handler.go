package handlers

import (
	"net/http"

	request "portfolio_backend/internal/adapter/http/dto/request"
	response "portfolio_backend/internal/adapter/http/dto/response"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the visitor chat widget and the admin chat console.
// adminWhatsApp is the number session summaries link to, empty to disable.
type ChatHandler struct {
	usecase       usecase.IChatUseCase
	adminWhatsApp string
	logger        *zap.Logger
}

func NewChatHandler(uc usecase.IChatUseCase, adminWhatsApp string, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{usecase: uc, adminWhatsApp: adminWhatsApp, logger: logger}
}

// PostMessage godoc
// @Summary      Post a visitor chat message
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChatMessageRequest  true  "Message"
// @Success      201   {object}  response.ChatMessageResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /chat/messages [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var payload request.ChatMessageRequest
	if !bindJSON(c, &payload) {
		return
	}

	msg, err := h.usecase.PostVisitorMessage(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromChatMessage(msg))
}

// ListMessages godoc
// @Summary      List a session's messages, oldest first
// @Tags         public
// @Produce      json
// @Param        sessionId  path      string  true  "Session id"
// @Success      200        {array}   response.ChatMessageResponse
// @Router       /chat/messages/{sessionId} [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs, err := h.usecase.ListMessages(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromChatMessages(msgs))
}

// ListSessions godoc
// @Summary      Summarize chat sessions, most recent first
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.ChatSessionResponse
// @Router       /admin/chat/sessions [get]
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.usecase.ListSessions(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromChatSessions(sessions, h.adminWhatsApp))
}

// UpdateSessionStatus godoc
// @Summary      Change a chat session status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        sessionId  path      string                       true  "Session id"
// @Param        body       body      request.StatusUpdateRequest  true  "New status"
// @Success      200        {object}  response.ChatSessionStateResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /admin/chat/sessions/{sessionId} [put]
func (h *ChatHandler) UpdateSessionStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}

	state, err := h.usecase.UpdateSessionStatus(c.Request.Context(), c.Param("sessionId"), payload.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromChatSessionState(state))
}

// ResolveSession godoc
// @Summary      Mark a chat session resolved
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        sessionId  path      string  true  "Session id"
// @Success      200        {object}  response.ChatSessionStateResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /admin/chat/sessions/{sessionId}/resolve [post]
func (h *ChatHandler) ResolveSession(c *gin.Context) {
	state, err := h.usecase.ResolveSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromChatSessionState(state))
}

// Reply godoc
// @Summary      Reply to a chat session as admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.AdminReplyRequest  true  "Reply"
// @Success      201   {object}  response.ChatMessageResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /admin/chat/messages [post]
func (h *ChatHandler) Reply(c *gin.Context) {
	var payload request.AdminReplyRequest
	if !bindJSON(c, &payload) {
		return
	}

	msg, err := h.usecase.PostAdminReply(c.Request.Context(), payload.SessionID, payload.Message)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if session, ok := AdminSession(c); ok {
		h.logger.Info("[chat][handler] admin reply success", zap.String("username", session.Username), zap.String("session_id", msg.SessionID))
	}
	c.JSON(http.StatusCreated, response.FromChatMessage(msg))
}
