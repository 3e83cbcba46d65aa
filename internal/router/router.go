package router

import (
	"house-points/internal/config"
	"house-points/internal/handler"
	"house-points/internal/middleware"
	"house-points/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires services, session middleware and routes into a gin engine. All
// configuration comes in through cfg; nothing here reads globals.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	authSvc := service.NewAuthService(db)
	houseSvc := service.NewHouseService(db)
	pointsSvc := service.NewPointsService(db)
	annSvc := service.NewAnnouncementService(db)

	sessions := middleware.NewSessions(cfg.Session.Secret, cfg.SessionTTL(), authSvc)

	authH := handler.NewAuthHandler(authSvc, sessions)
	publicH := handler.NewPublicHandler(houseSvc, annSvc)
	adminH := handler.NewAdminHandler(houseSvc, pointsSvc)
	captainH := handler.NewCaptainHandler(houseSvc, annSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.GET("/houses", publicH.Houses)
	api.GET("/live-points", publicH.LivePoints)
	api.GET("/members", publicH.Members)
	api.GET("/announcements", publicH.Announcements)
	api.POST("/login", authH.Login)

	authed := api.Group("", sessions.Authenticate())
	authed.GET("/me", authH.Me)
	authed.POST("/logout", authH.Logout)

	admin := authed.Group("/admin", sessions.RequireAdmin())
	admin.GET("/dashboard", adminH.Dashboard)
	admin.POST("/points/add", adminH.AddPoints)
	admin.POST("/points/deduct", adminH.DeductPoints)

	captain := authed.Group("/captain", sessions.RequireCaptain())
	captain.GET("/dashboard", captainH.Dashboard)
	captain.POST("/announcements/create", captainH.CreateAnnouncement)
	captain.DELETE("/announcements/:id/delete", captainH.DeleteAnnouncement)

	return r
}
