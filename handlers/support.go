package handlers

import (
	"net/http"

	"freshpress/models"
	"freshpress/services/support"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	Tickets *support.TicketService
}

func NewSupportHandler(tickets *support.TicketService) *SupportHandler {
	return &SupportHandler{Tickets: tickets}
}

func (h *SupportHandler) ListTickets(c *gin.Context) {
	var f models.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters", "details": err.Error()})
		return
	}
	page, err := h.Tickets.List(c.Request.Context(), c.GetString("upstreamToken"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *SupportHandler) TicketDetail(c *gin.Context) {
	detail, err := h.Tickets.Detail(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SendMessage appends to the thread and returns the refreshed ticket so
// the panel always renders the server's view of the conversation.
func (h *SupportHandler) SendMessage(c *gin.Context) {
	var input struct {
		Body       string `json:"body"`
		IsInternal bool   `json:"isInternal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	token := c.GetString("upstreamToken")
	if err := h.Tickets.SendMessage(c.Request.Context(), token, c.Param("id"), input.Body, input.IsInternal); err != nil {
		respondError(c, err)
		return
	}
	detail, err := h.Tickets.Detail(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *SupportHandler) TakeTicket(c *gin.Context) {
	if err := h.Tickets.Take(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "in_progress"})
}

func (h *SupportHandler) ResolveTicket(c *gin.Context) {
	var resolution support.Resolution
	if err := c.ShouldBindJSON(&resolution); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Tickets.Resolve(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), resolution); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

func (h *SupportHandler) EscalateTicket(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Tickets.Escalate(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "escalated"})
}

func (h *SupportHandler) CreateRefund(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	refund, err := h.Tickets.CreateRefund(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), input.Amount, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"refund": refund})
}
