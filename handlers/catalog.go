package handlers

import (
	"net/http"

	"freshpress/models"
	"freshpress/services/catalog"
	"freshpress/upstream"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog *catalog.Service
	API     *upstream.Client
}

func NewCatalogHandler(svc *catalog.Service, api *upstream.Client) *CatalogHandler {
	return &CatalogHandler{Catalog: svc, API: api}
}

// Branches lists all branch locations (cache-first).
func (h *CatalogHandler) Branches(c *gin.Context) {
	branches, err := h.Catalog.Branches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

// BranchServices lists the services offered by a branch.
func (h *CatalogHandler) BranchServices(c *gin.Context) {
	services, err := h.Catalog.BranchServices(c.Request.Context(), c.Param("branchID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ServiceItems lists the item catalog for a branch and service.
func (h *CatalogHandler) ServiceItems(c *gin.Context) {
	items, err := h.Catalog.ServiceItems(c.Request.Context(), c.Param("branchID"), c.Query("service"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ListAddresses returns the signed-in customer's saved addresses.
func (h *CatalogHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.API.Addresses(c.Request.Context(), c.GetString("upstreamToken"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// CreateAddress saves a new address for the signed-in customer.
func (h *CatalogHandler) CreateAddress(c *gin.Context) {
	var input models.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	address, err := h.API.CreateAddress(c.Request.Context(), c.GetString("upstreamToken"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": address})
}
