package attendance

import (
	"humanage/internal/middleware"
	"humanage/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.GET("/summary", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.Summary)
		attendances.GET("/:id", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetById)
		attendances.POST("/clock-in", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.ClockIn)
		attendances.POST("/clock-out", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.ClockOut)
		attendances.POST("", middleware.RBACAuthorize(rbacService, "attendance", "manage"), h.CreateManual)
		attendances.PUT("/:id", middleware.RBACAuthorize(rbacService, "attendance", "manage"), h.Correct)
		attendances.DELETE("/:id", middleware.RBACAuthorize(rbacService, "attendance", "manage"), h.Delete)
	}
}
