package handlers

import (
	"net/http"

	"freshpress/models"
	"freshpress/services/admin"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders *admin.OrderService
}

func NewOrderHandler(orders *admin.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var f models.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Orders.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ExportOrders streams the current page as a CSV download.
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	var f models.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Orders.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := admin.OrdersCSV(page.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// NextStatuses returns the manual transitions offered from a status, so
// the dashboard renders exactly what the table allows.
func (h *OrderHandler) NextStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"current": c.Query("status"),
		"next":    admin.NextStatuses(c.Query("status")),
	})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Current string `json:"current" binding:"required"`
		Next    string `json:"next" binding:"required"`
		Note    string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current and next status are required"})
		return
	}
	if err := h.Orders.UpdateStatus(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Current, input.Next, input.Note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *OrderHandler) AssignToBranch(c *gin.Context) {
	var input struct {
		BranchID string `json:"branchId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Orders.AssignToBranch(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.BranchID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "assigned"})
}
