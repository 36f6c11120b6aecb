package routes

import (
	"portfolio_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHealth          = "/health"
	PathContact         = "/contact"
	PathReceiptRequests = "/receipt-requests"
	PathChatMessages    = "/chat/messages"
)

func addPublicRoutes(rg *gin.RouterGroup, h routeHandlers) {
	rg.GET(PathHealth, handlers.Health)
	rg.POST(PathContact, h.contact.Submit)
	rg.POST(PathReceiptRequests, h.receipt.Submit)

	chat := rg.Group(PathChatMessages)
	{
		chat.POST("", h.chat.PostMessage)
		chat.GET("/:sessionId", h.chat.ListMessages)
	}
}
