package handlers

import (
	"net/http"

	"freshpress/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Wizard booking.WizardService
	Logger *zap.Logger
}

func NewBookingHandler(wizard booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Wizard: wizard, Logger: logger}
}

// InitiateSession starts a fresh wizard at step 1. Unauthenticated
// callers may browse; sign-in is enforced at the items boundary.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Wizard.Initiate(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Wizard.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSession applies field changes and runs dependent recomputes.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var input booking.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.Update(c.Request.Context(), c.Param("sessionID"), c.GetString("upstreamToken"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AdvanceSession moves forward one step when the gate holds.
func (h *BookingHandler) AdvanceSession(c *gin.Context) {
	session, err := h.Wizard.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// BackSession moves one step backwards.
func (h *BookingHandler) BackSession(c *gin.Context) {
	session, err := h.Wizard.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// JumpSession revisits an earlier step directly.
func (h *BookingHandler) JumpSession(c *gin.Context) {
	var input struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.JumpTo(c.Request.Context(), c.Param("sessionID"), input.Step)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitOrder performs the single create-order call.
func (h *BookingHandler) SubmitOrder(c *gin.Context) {
	session, err := h.Wizard.Submit(c.Request.Context(), c.Param("sessionID"), c.GetString("upstreamToken"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("order placed",
		zap.String("sessionID", session.SessionID),
		zap.String("orderNumber", session.OrderNumber))
	c.JSON(http.StatusOK, gin.H{
		"orderId":     session.OrderID,
		"orderNumber": session.OrderNumber,
		"session":     session,
	})
}

// RescheduleOrder moves the just-placed order to a new date and slot.
func (h *BookingHandler) RescheduleOrder(c *gin.Context) {
	var input struct {
		Date     string `json:"date"`
		Timeslot string `json:"timeslot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.Reschedule(c.Request.Context(), c.Param("sessionID"), c.GetString("upstreamToken"), input.Date, input.Timeslot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CancelSession discards the wizard session entirely.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Wizard.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
