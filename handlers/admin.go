package handlers

import (
	"net/http"

	"freshpress/models"
	"freshpress/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler bundles the dashboard services behind the admin portal.
type AdminHandler struct {
	Complaints *admin.ComplaintService
	Customers  *admin.CustomerService
	Logistics  *admin.LogisticsService
	Audit      *admin.AuditService
}

func NewAdminHandler(complaints *admin.ComplaintService, customers *admin.CustomerService, logistics *admin.LogisticsService, audit *admin.AuditService) *AdminHandler {
	return &AdminHandler{Complaints: complaints, Customers: customers, Logistics: logistics, Audit: audit}
}

func (h *AdminHandler) ListComplaints(c *gin.Context) {
	var f models.ComplaintFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Complaints.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdminHandler) AssignComplaint(c *gin.Context) {
	var input struct {
		AssignedTo string `json:"assignedTo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Complaints.Assign(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.AssignedTo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "assigned"})
}

func (h *AdminHandler) ResolveComplaint(c *gin.Context) {
	var input struct {
		Resolution string `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Complaints.Resolve(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Resolution); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

func (h *AdminHandler) EscalateComplaint(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Complaints.Escalate(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "escalated"})
}

func (h *AdminHandler) ListCustomers(c *gin.Context) {
	var f models.CustomerFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Customers.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ExportCustomers streams the current page as a CSV download.
func (h *AdminHandler) ExportCustomers(c *gin.Context) {
	var f models.CustomerFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Customers.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := admin.CustomersCSV(page.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *AdminHandler) SetCustomerActive(c *gin.Context) {
	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isActive is required"})
		return
	}
	if err := h.Customers.SetActive(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), *input.IsActive); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *AdminHandler) SetCustomerVIP(c *gin.Context) {
	var input struct {
		IsVIP *bool `json:"isVip" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isVip is required"})
		return
	}
	if err := h.Customers.SetVIP(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), *input.IsVIP); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *AdminHandler) ListLogistics(c *gin.Context) {
	var f models.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Logistics.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdminHandler) SetLogisticsActive(c *gin.Context) {
	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isActive is required"})
		return
	}
	if err := h.Logistics.SetActive(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), *input.IsActive); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *AdminHandler) ListAudit(c *gin.Context) {
	var f models.AuditFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Audit.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
