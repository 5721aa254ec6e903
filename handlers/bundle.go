package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler  gin.HandlerFunc
	LogoutHandler gin.HandlerFunc

	// Catalog endpoints
	BranchesHandler       gin.HandlerFunc
	BranchServicesHandler gin.HandlerFunc
	ServiceItemsHandler   gin.HandlerFunc
	ListAddressesHandler  gin.HandlerFunc
	CreateAddressHandler  gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	AdvanceSession  gin.HandlerFunc
	BackSession     gin.HandlerFunc
	JumpSession     gin.HandlerFunc
	SubmitOrder     gin.HandlerFunc
	RescheduleOrder gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Admin dashboard endpoints
	AdminHandler  *AdminHandler
	OrderHandler  *OrderHandler
	RefundHandler *RefundHandler
	StaffHandler  *StaffHandler

	// Support panel endpoints
	SupportHandler *SupportHandler
}
