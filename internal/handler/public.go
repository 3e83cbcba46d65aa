package handler

import (
	"net/http"

	"house-points/internal/service"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	houses        *service.HouseService
	announcements *service.AnnouncementService
}

func NewPublicHandler(houses *service.HouseService, announcements *service.AnnouncementService) *PublicHandler {
	return &PublicHandler{houses: houses, announcements: announcements}
}

// GET /api/houses
func (h *PublicHandler) Houses(c *gin.Context) {
	houses, err := h.houses.ListByName(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, houses)
}

// GET /api/live-points
func (h *PublicHandler) LivePoints(c *gin.Context) {
	ranked, err := h.houses.Ranked(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

// GET /api/members?house=NAME
func (h *PublicHandler) Members(c *gin.Context) {
	groups, err := h.houses.MembersGrouped(c.Request.Context(), c.Query("house"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GET /api/announcements
func (h *PublicHandler) Announcements(c *gin.Context) {
	anns, err := h.announcements.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, anns)
}
