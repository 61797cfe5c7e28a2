package performance

import (
	"humanage/internal/middleware"
	"humanage/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reviews := r.Group("/performance-reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.GET("", middleware.RBACAuthorize(rbacService, "performance", "read"), h.GetAll)
		reviews.GET("/:id", middleware.RBACAuthorize(rbacService, "performance", "read"), h.GetById)
		reviews.POST("", middleware.RBACAuthorize(rbacService, "performance", "manage"), h.Create)
		reviews.PUT("/:id", middleware.RBACAuthorize(rbacService, "performance", "manage"), h.Update)
		reviews.DELETE("/:id", middleware.RBACAuthorize(rbacService, "performance", "manage"), h.Delete)
	}
}
