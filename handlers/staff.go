package handlers

import (
	"net/http"

	"freshpress/models"
	"freshpress/services/admin"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	Staff *admin.StaffService
}

func NewStaffHandler(staff *admin.StaffService) *StaffHandler {
	return &StaffHandler{Staff: staff}
}

// editorMatrix pulls the signed-in admin's own permission set from the
// request context. It is the upper bound for anything they delegate.
func editorMatrix(c *gin.Context) models.PermissionMatrix {
	value, ok := c.Get("permissions")
	if !ok {
		return models.PermissionMatrix{}
	}
	matrix, ok := value.(models.PermissionMatrix)
	if !ok {
		return models.PermissionMatrix{}
	}
	return matrix
}

func (h *StaffHandler) ListStaff(c *gin.Context) {
	var f models.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Staff.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *StaffHandler) ListCenterAdmins(c *gin.Context) {
	var f models.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Staff.ListCenterAdmins(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PermissionModules returns the editable matrix layout so the editor
// renders only cells that actually exist.
func (h *StaffHandler) PermissionModules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": models.ModuleActions})
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	member, err := h.Staff.Create(c.Request.Context(), c.GetString("upstreamToken"), input, editorMatrix(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": member})
}

func (h *StaffHandler) CreateCenterAdmin(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	centerAdmin, err := h.Staff.CreateCenterAdmin(c.Request.Context(), c.GetString("upstreamToken"), input, editorMatrix(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"centerAdmin": centerAdmin})
}

func (h *StaffHandler) UpdatePermissions(c *gin.Context) {
	var input struct {
		Permissions models.PermissionMatrix `json:"permissions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a permission matrix is required"})
		return
	}
	if err := h.Staff.UpdatePermissions(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Permissions, editorMatrix(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
