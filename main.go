package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshpress/config"
	"freshpress/cron"
	"freshpress/handlers"
	"freshpress/middleware"
	"freshpress/routes"
	"freshpress/services/admin"
	"freshpress/services/booking"
	"freshpress/services/catalog"
	"freshpress/services/support"
	"freshpress/upstream"
	"freshpress/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitAuthCache()
	utils.InitWizardCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream API client.
	api := upstream.NewClient()

	// Services.
	catalogService := &catalog.Service{
		API:   api,
		Cache: utils.GetCacheClient(),
	}

	wizardService := &booking.DefaultWizardService{
		Store: booking.NewRedisSessionStore(utils.GetWizardCacheClient()),
		API:   api,
	}

	complaintService := &admin.ComplaintService{API: api}
	customerService := &admin.CustomerService{API: api}
	logisticsService := &admin.LogisticsService{API: api}
	auditService := &admin.AuditService{API: api}
	orderService := &admin.OrderService{API: api}
	refundService := admin.NewRefundService(api)
	staffService := &admin.StaffService{API: api}
	ticketService := &support.TicketService{API: api}

	// Handlers.
	authHandler := handlers.NewAuthHandler(api, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, api)
	bookingHandler := handlers.NewBookingHandler(wizardService, logger)
	adminHandler := handlers.NewAdminHandler(complaintService, customerService, logisticsService, auditService)
	orderHandler := handlers.NewOrderHandler(orderService)
	refundHandler := handlers.NewRefundHandler(refundService)
	staffHandler := handlers.NewStaffHandler(staffService)
	supportHandler := handlers.NewSupportHandler(ticketService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		LoginHandler:  authHandler.Login,
		LogoutHandler: authHandler.Logout,

		// Catalog endpoints.
		BranchesHandler:       catalogHandler.Branches,
		BranchServicesHandler: catalogHandler.BranchServices,
		ServiceItemsHandler:   catalogHandler.ServiceItems,
		ListAddressesHandler:  catalogHandler.ListAddresses,
		CreateAddressHandler:  catalogHandler.CreateAddress,

		// Booking wizard endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		GetSession:      bookingHandler.GetSession,
		UpdateSession:   bookingHandler.UpdateSession,
		AdvanceSession:  bookingHandler.AdvanceSession,
		BackSession:     bookingHandler.BackSession,
		JumpSession:     bookingHandler.JumpSession,
		SubmitOrder:     bookingHandler.SubmitOrder,
		RescheduleOrder: bookingHandler.RescheduleOrder,
		CancelSession:   bookingHandler.CancelSession,

		// Dashboard endpoints.
		AdminHandler:  adminHandler,
		OrderHandler:  orderHandler,
		RefundHandler: refundHandler,
		StaffHandler:  staffHandler,

		// Support endpoints.
		SupportHandler: supportHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background catalog cache refresh.
	cron.InitCatalogWorker(catalogService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
