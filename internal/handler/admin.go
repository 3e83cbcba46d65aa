package handler

import (
	"context"
	"fmt"
	"net/http"

	"house-points/internal/logger"
	"house-points/internal/middleware"
	"house-points/internal/model"
	"house-points/internal/service"

	"github.com/gin-gonic/gin"
)

const recentTransactionLimit = 10

type AdminHandler struct {
	houses *service.HouseService
	points *service.PointsService
}

func NewAdminHandler(houses *service.HouseService, points *service.PointsService) *AdminHandler {
	return &AdminHandler{houses: houses, points: points}
}

// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	houses, err := h.houses.ListByPoints(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	recent, err := h.points.Recent(c.Request.Context(), recentTransactionLimit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.AdminDashboard{Houses: houses, RecentTransactions: recent})
}

// POST /api/admin/points/add
func (h *AdminHandler) AddPoints(c *gin.Context) {
	h.applyPoints(c, "added", "to", h.points.Add)
}

// POST /api/admin/points/deduct
func (h *AdminHandler) DeductPoints(c *gin.Context) {
	h.applyPoints(c, "deducted", "from", h.points.Deduct)
}

type pointsOp func(ctx context.Context, houseID, points int, reason string, adminID int) (*model.House, error)

func (h *AdminHandler) applyPoints(c *gin.Context, verb, prep string, op pointsOp) {
	var req model.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, _ := middleware.Current(c)

	house, err := op(c.Request.Context(), req.HouseID, req.Points, req.Reason, p.ID())
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("points.applied", "house", house.Name, "points", req.Points, "op", verb, "admin", p.ID())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Successfully %s %d points %s %s", verb, req.Points, prep, house.Name),
		"house": gin.H{
			"id":     house.ID,
			"name":   house.Name,
			"points": house.HousePoints,
		},
	})
}
