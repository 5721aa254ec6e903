package handlers

import (
	"net/http"

	"freshpress/models"
	"freshpress/services/admin"

	"github.com/gin-gonic/gin"
)

type RefundHandler struct {
	Refunds *admin.RefundService
}

func NewRefundHandler(refunds *admin.RefundService) *RefundHandler {
	return &RefundHandler{Refunds: refunds}
}

// ListRefunds returns the page with the offered actions attached per
// row, so the dashboard never renders an action the policy withholds.
func (h *RefundHandler) ListRefunds(c *gin.Context) {
	var f models.RefundFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Refunds.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}

	type refundRow struct {
		models.Refund
		Actions []string `json:"actions"`
	}
	rows := make([]refundRow, 0, len(page.Items))
	for _, r := range page.Items {
		rows = append(rows, refundRow{Refund: r, Actions: h.Refunds.AvailableActions(r)})
	}
	c.JSON(http.StatusOK, gin.H{"items": rows, "pagination": page.Pagination})
}

func (h *RefundHandler) Approve(c *gin.Context) {
	var input struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Refunds.Approve(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

func (h *RefundHandler) Reject(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Refunds.Reject(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

func (h *RefundHandler) Escalate(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Refunds.Escalate(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "escalated"})
}
