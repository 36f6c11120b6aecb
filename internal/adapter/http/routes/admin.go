package routes

import "github.com/gin-gonic/gin"

const (
	PathLogin        = "/login"
	PathDashboard    = "/dashboard"
	PathContacts     = "/contacts"
	PathChatSessions = "/chat/sessions"
)

// addAdminRoutes registers the console API. Everything but login sits
// behind requireAdmin.
func addAdminRoutes(rg *gin.RouterGroup, h routeHandlers, requireAdmin gin.HandlerFunc) {
	rg.POST(PathLogin, h.auth.Login)

	protected := rg.Group("", requireAdmin)
	protected.GET(PathDashboard, h.dashboard.Summary)

	receipts := protected.Group(PathReceiptRequests)
	{
		receipts.GET("", h.receipt.List)
		receipts.GET("/:id", h.receipt.Get)
		receipts.PUT("/:id", h.receipt.UpdateStatus)
		receipts.DELETE("/:id", h.receipt.Delete)
		receipts.POST("/:id/generate-pdf", h.receipt.GeneratePDF)
	}

	contacts := protected.Group(PathContacts)
	{
		contacts.GET("", h.contact.List)
		contacts.GET("/:id", h.contact.Get)
		contacts.PUT("/:id", h.contact.UpdateStatus)
		contacts.DELETE("/:id", h.contact.Delete)
	}

	sessions := protected.Group(PathChatSessions)
	{
		sessions.GET("", h.chat.ListSessions)
		sessions.GET("/:sessionId/messages", h.chat.ListMessages)
		sessions.PUT("/:sessionId", h.chat.UpdateSessionStatus)
		sessions.POST("/:sessionId/resolve", h.chat.ResolveSession)
	}
	protected.POST(PathChatMessages, h.chat.Reply)
}
