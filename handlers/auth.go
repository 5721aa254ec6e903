package handlers

import (
	"net/http"
	"time"

	"freshpress/upstream"
	"freshpress/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var knownPortals = map[string]bool{
	"customer":     true,
	"admin":        true,
	"support":      true,
	"center-admin": true,
}

type AuthHandler struct {
	API    *upstream.Client
	Logger *zap.Logger
}

func NewAuthHandler(api *upstream.Client, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{API: api, Logger: logger}
}

// Login forwards credentials upstream for the given portal, stores the
// upstream token in the unified auth store and issues the gateway JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	portal := c.Param("portal")
	if !knownPortals[portal] {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown portal"})
		return
	}

	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	result, err := h.API.Login(c.Request.Context(), portal, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(result.UserID, portal, result.Role, utils.AuthSessionTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	session := utils.PortalSession{
		UserID:        result.UserID,
		Portal:        portal,
		Role:          result.Role,
		BranchID:      result.BranchID,
		Permissions:   result.Permissions,
		UpstreamToken: result.Token,
		CreatedAt:     time.Now(),
	}
	if err := utils.SavePortalSession(utils.GetAuthCacheClient(), utils.HashToken(token), session); err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("portal login", zap.String("portal", portal), zap.String("userID", result.UserID))
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"userId":   result.UserID,
		"role":     result.Role,
		"branchId": result.BranchID,
	})
}

// Logout revokes the gateway session and best-effort revokes upstream.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenHash := c.GetString("tokenHash")
	portal := c.GetString("portal")

	if err := utils.DeletePortalSession(utils.GetAuthCacheClient(), tokenHash); err != nil {
		respondError(c, err)
		return
	}
	if err := h.API.Logout(c.Request.Context(), portal, c.GetString("upstreamToken")); err != nil {
		// The gateway session is already gone; upstream revocation
		// failure is not worth failing the logout over.
		h.Logger.Warn("upstream logout failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
