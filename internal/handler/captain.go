package handler

import (
	"net/http"
	"strconv"

	"house-points/internal/logger"
	"house-points/internal/middleware"
	"house-points/internal/model"
	"house-points/internal/service"

	"github.com/gin-gonic/gin"
)

type CaptainHandler struct {
	houses        *service.HouseService
	announcements *service.AnnouncementService
}

func NewCaptainHandler(houses *service.HouseService, announcements *service.AnnouncementService) *CaptainHandler {
	return &CaptainHandler{houses: houses, announcements: announcements}
}

// GET /api/captain/dashboard
func (h *CaptainHandler) Dashboard(c *gin.Context) {
	p, _ := middleware.Current(c)
	captain := p.Captain

	house, err := h.houses.Get(c.Request.Context(), captain.HouseID)
	if err != nil {
		writeError(c, err)
		return
	}
	members, err := h.houses.MembersOf(c.Request.Context(), captain.HouseID)
	if err != nil {
		writeError(c, err)
		return
	}
	anns, err := h.announcements.OwnedBy(c.Request.Context(), captain.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.CaptainDashboard{
		House: model.HouseSummary{
			ID:          house.ID,
			Name:        house.Name,
			Points:      house.HousePoints,
			Description: house.Description,
			LogoURL:     house.LogoURL,
		},
		Members:         members,
		MyAnnouncements: anns,
	})
}

// POST /api/captain/announcements/create
func (h *CaptainHandler) CreateAnnouncement(c *gin.Context) {
	var req model.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, _ := middleware.Current(c)

	ann, err := h.announcements.Create(c.Request.Context(), p.Captain, req)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("announcement.created", "id", ann.ID, "captain", p.ID())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Announcement created successfully",
		"announcement": model.OwnAnnouncement{
			ID: ann.ID, Title: ann.Title, Content: ann.Content,
			ImageURL: ann.ImageURL, CreatedAt: ann.CreatedAt,
		},
	})
}

// DELETE /api/captain/announcements/:id/delete
func (h *CaptainHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, _ := middleware.Current(c)

	if err := h.announcements.Delete(c.Request.Context(), p.ID(), id); err != nil {
		writeError(c, err)
		return
	}

	logger.Info("announcement.deleted", "id", id, "captain", p.ID())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Announcement deleted successfully"})
}
