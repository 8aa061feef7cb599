package main

import (
	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub-api/internal/handler"
	"github.com/hostelhub/hostelhub-api/internal/middleware"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/service"
	"github.com/hostelhub/hostelhub-api/pkg/config"
)

type handlers struct {
	auth          *handler.AuthHandler
	leaves        *handler.LeaveHandler
	students      *handler.StudentHandler
	rooms         *handler.RoomHandler
	staff         *handler.StaffHandler
	complaints    *handler.ComplaintHandler
	fees          *handler.FeeHandler
	health        *handler.HealthRecordHandler
	feedback      *handler.FeedbackHandler
	notifications *handler.NotificationHandler
	dashboard     *handler.DashboardHandler
}

// registerRoutes mounts the versioned API. Everything except login sits
// behind JWT; per-route RBAC narrows further.
func registerRoutes(r *gin.Engine, cfg *config.Config, authSvc *service.AuthService, h *handlers) {
	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", h.auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	authed.GET("/auth/me", h.auth.Me)

	staffOnly := middleware.RequireRoles(models.RoleJointWarden, models.RoleWarden, models.RoleAdmin)
	wardenOrAdmin := middleware.RequireRoles(models.RoleWarden, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	leaves := authed.Group("/leaves")
	{
		leaves.GET("", h.leaves.List)
		leaves.POST("", h.leaves.Create)
		leaves.GET("/export", staffOnly, h.leaves.Export)
		leaves.GET("/statistics", staffOnly, h.leaves.Statistics)
		leaves.GET("/:id", h.leaves.Get)
		leaves.POST("/:id/recommend", middleware.RequireRoles(models.RoleJointWarden, models.RoleAdmin), h.leaves.Recommend)
		leaves.POST("/:id/approve", wardenOrAdmin, h.leaves.Approve)
		leaves.POST("/:id/reject", staffOnly, h.leaves.Reject)
	}

	students := authed.Group("/students")
	{
		students.GET("", staffOnly, h.students.List)
		students.POST("", adminOnly, h.students.Create)
		students.GET("/:id", middleware.RBAC(string(models.RoleJointWarden), string(models.RoleWarden), string(models.RoleAdmin), "SELF"), h.students.Get)
		students.PUT("/:id", adminOnly, h.students.Update)
		students.DELETE("/:id", adminOnly, h.students.Delete)
	}

	rooms := authed.Group("/rooms")
	{
		rooms.GET("", h.rooms.List)
		rooms.POST("", adminOnly, h.rooms.Create)
		rooms.GET("/:id", h.rooms.Get)
		rooms.POST("/:id/allocate", wardenOrAdmin, h.rooms.Allocate)
		rooms.DELETE("/:id/occupants/:studentId", wardenOrAdmin, h.rooms.Vacate)
		rooms.DELETE("/:id", adminOnly, h.rooms.Delete)
	}

	staff := authed.Group("/staff")
	{
		staff.GET("", staffOnly, h.staff.List)
		staff.GET("/:id", staffOnly, h.staff.Get)
		staff.POST("", adminOnly, h.staff.Create)
		staff.PUT("/:id", adminOnly, h.staff.Update)
		staff.DELETE("/:id", adminOnly, h.staff.Delete)
	}

	complaints := authed.Group("/complaints")
	{
		complaints.GET("", h.complaints.List)
		complaints.POST("", h.complaints.Create)
		complaints.PUT("/:id/status", staffOnly, h.complaints.UpdateStatus)
		complaints.DELETE("/:id", adminOnly, h.complaints.Delete)
	}

	fees := authed.Group("/fees")
	{
		fees.GET("", h.fees.List)
		fees.GET("/summary", wardenOrAdmin, h.fees.Summary)
		fees.POST("", adminOnly, h.fees.Create)
		fees.POST("/:id/pay", adminOnly, h.fees.RecordPayment)
		fees.DELETE("/:id", adminOnly, h.fees.Delete)
	}

	health := authed.Group("/health-records")
	{
		health.GET("", h.health.List)
		health.POST("", staffOnly, h.health.Create)
		health.PUT("/:id", staffOnly, h.health.Update)
		health.DELETE("/:id", adminOnly, h.health.Delete)
	}

	feedback := authed.Group("/feedback")
	{
		feedback.GET("", h.feedback.List)
		feedback.POST("", h.feedback.Create)
		feedback.GET("/averages", staffOnly, h.feedback.Averages)
		feedback.DELETE("/:id", adminOnly, h.feedback.Delete)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", h.notifications.List)
		notifications.POST("/broadcast", staffOnly, h.notifications.Broadcast)
		notifications.PUT("/:id/read", h.notifications.MarkRead)
		notifications.DELETE("/:id", h.notifications.Dismiss)
	}

	dashboard := authed.Group("/dashboard")
	{
		dashboard.GET("/admin", adminOnly, h.dashboard.Admin)
		dashboard.GET("/warden", staffOnly, h.dashboard.Warden)
		dashboard.GET("/metrics", adminOnly, h.dashboard.Metrics)
	}
}
