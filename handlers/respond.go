package handlers

import (
	"errors"
	"net/http"

	"freshpress/services/admin"
	"freshpress/services/booking"
	"freshpress/services/support"
	"freshpress/upstream"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP responses. Upstream
// errors keep their status and server message verbatim; local
// validation and step gates never reach upstream at all.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrLoginRequired) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": booking.ErrLoginRequired.Message, "code": booking.ErrLoginRequired.Code})
		return
	}
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": booking.ErrSessionNotFound.Message})
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	var wizErr *booking.WizardError
	if errors.As(err, &wizErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": wizErr.Message, "code": wizErr.Code})
		return
	}
	var valErr *admin.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message})
		return
	}
	var ticketErr *support.TicketError
	if errors.As(err, &ticketErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ticketErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
