package routes

import (
	"net/http"
	"time"

	"freshpress/handlers"
	"freshpress/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers per-portal login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/:portal/login", hb.LoginHandler)

		// Logout needs a resolvable session to revoke.
		api.POST("/:portal/logout", middleware.PortalAuth(), hb.LogoutHandler)
	}
}

// RegisterCatalogRoutes registers branch/service browsing endpoints.
// Browsing is public; saved addresses belong to the customer portal.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/branches", hb.BranchesHandler)
		api.GET("/branches/:branchID/services", hb.BranchServicesHandler)
		api.GET("/branches/:branchID/items", hb.ServiceItemsHandler)

		protected := api.Group("")
		protected.Use(middleware.PortalAuth("customer"))
		protected.GET("/addresses", hb.ListAddressesHandler)
		protected.POST("/addresses", hb.CreateAddressHandler)
	}
}

// RegisterBookingRoutes sets up the wizard endpoints. Authentication is
// optional here: the first steps are browsable, and the wizard itself
// enforces sign-in at the items boundary.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.OptionalPortalAuth())
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/advance", hb.AdvanceSession)
		bookingGroup.POST("/session/:sessionID/back", hb.BackSession)
		bookingGroup.POST("/session/:sessionID/jump", hb.JumpSession)
		bookingGroup.POST("/session/:sessionID/submit", hb.SubmitOrder)
		bookingGroup.POST("/session/:sessionID/reschedule", hb.RescheduleOrder)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterAdminRoutes sets up the dashboard endpoints for the admin
// portal. Center admins share the order views for their branch.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.PortalAuth("admin", "center-admin"))

		adminGroup.GET("/orders", hb.OrderHandler.ListOrders)
		adminGroup.GET("/orders/export", hb.OrderHandler.ExportOrders)
		adminGroup.GET("/orders/transitions", hb.OrderHandler.NextStatuses)
		adminGroup.PUT("/orders/:id/status", hb.OrderHandler.UpdateStatus)
		adminGroup.PUT("/orders/:id/assign", hb.OrderHandler.AssignToBranch)

		adminGroup.GET("/complaints", hb.AdminHandler.ListComplaints)
		adminGroup.PUT("/complaints/:id/assign", hb.AdminHandler.AssignComplaint)
		adminGroup.PUT("/complaints/:id/resolve", hb.AdminHandler.ResolveComplaint)
		adminGroup.PUT("/complaints/:id/escalate", hb.AdminHandler.EscalateComplaint)

		adminGroup.GET("/refunds", hb.RefundHandler.ListRefunds)
		adminGroup.PUT("/refunds/:id/approve", hb.RefundHandler.Approve)
		adminGroup.PUT("/refunds/:id/reject", hb.RefundHandler.Reject)
		adminGroup.PUT("/refunds/:id/escalate", hb.RefundHandler.Escalate)

		adminGroup.GET("/customers", hb.AdminHandler.ListCustomers)
		adminGroup.GET("/customers/export", hb.AdminHandler.ExportCustomers)
		adminGroup.PUT("/customers/:id/active", hb.AdminHandler.SetCustomerActive)
		adminGroup.PUT("/customers/:id/vip", hb.AdminHandler.SetCustomerVIP)

		adminGroup.GET("/logistics", hb.AdminHandler.ListLogistics)
		adminGroup.PUT("/logistics/:id/active", hb.AdminHandler.SetLogisticsActive)

		adminGroup.GET("/audit", hb.AdminHandler.ListAudit)
	}

	// Staff and center-admin management stays admin-portal only.
	staffGroup := r.Group("/api/admin/staff")
	{
		staffGroup.Use(middleware.PortalAuth("admin"))
		staffGroup.GET("", hb.StaffHandler.ListStaff)
		staffGroup.POST("", hb.StaffHandler.CreateStaff)
		staffGroup.GET("/modules", hb.StaffHandler.PermissionModules)
		staffGroup.PUT("/:id/permissions", hb.StaffHandler.UpdatePermissions)
		staffGroup.GET("/center-admins", hb.StaffHandler.ListCenterAdmins)
		staffGroup.POST("/center-admins", hb.StaffHandler.CreateCenterAdmin)
	}
}

// RegisterCenterAdminRoutes exposes the branch-scoped order views for
// center admins. The handlers are shared with the admin dashboard; the
// branch scoping itself is enforced upstream from the session's token.
func RegisterCenterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	centerGroup := r.Group("/api/center-admin")
	{
		centerGroup.Use(middleware.PortalAuth("center-admin"))
		centerGroup.GET("/orders", hb.OrderHandler.ListOrders)
		centerGroup.GET("/orders/transitions", hb.OrderHandler.NextStatuses)
		centerGroup.PUT("/orders/:id/status", hb.OrderHandler.UpdateStatus)
	}
}

// RegisterSupportRoutes sets up the ticket panel endpoints.
func RegisterSupportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	supportGroup := r.Group("/api/support")
	{
		supportGroup.Use(middleware.PortalAuth("support", "admin"))
		supportGroup.GET("/tickets", hb.SupportHandler.ListTickets)
		supportGroup.GET("/tickets/:id", hb.SupportHandler.TicketDetail)
		supportGroup.POST("/tickets/:id/messages", hb.SupportHandler.SendMessage)
		supportGroup.PUT("/tickets/:id/take", hb.SupportHandler.TakeTicket)
		supportGroup.PUT("/tickets/:id/resolve", hb.SupportHandler.ResolveTicket)
		supportGroup.PUT("/tickets/:id/escalate", hb.SupportHandler.EscalateTicket)
		supportGroup.POST("/tickets/:id/refund", hb.SupportHandler.CreateRefund)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "FreshPress portal gateway"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterCenterAdminRoutes(r, hb)
	RegisterSupportRoutes(r, hb)
	RegisterHealthRoute(r)
}
