package handler

import (
	"net/http"

	"house-points/internal/logger"
	"house-points/internal/middleware"
	"house-points/internal/model"
	"house-points/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     *service.AuthService
	sessions *middleware.Sessions
}

func NewAuthHandler(auth *service.AuthService, sessions *middleware.Sessions) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		writeError(c, err)
		return
	}

	if err := h.sessions.Issue(c, p); err != nil {
		writeError(c, err)
		return
	}

	logger.Info("login.ok", "uid", p.ID(), "role", p.Role)
	c.JSON(http.StatusOK, model.LoginResponse{
		Success: true,
		Role:    p.Role,
		User:    model.UserInfo{ID: p.ID(), Username: p.Username(), Name: p.Name()},
	})
}

// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, model.MeResponse{
		ID:       p.ID(),
		Username: p.Username(),
		Name:     p.Name(),
		Role:     p.Role,
		HouseID:  p.HouseID(),
	})
}

// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
