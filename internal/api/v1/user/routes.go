package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	users := router.Group("/users")
	users.POST("", h.Create)
	users.GET("", h.List)
	users.POST("/login", h.Login)
	users.GET("/:id", h.Get)
	users.PUT("/:id/activity", h.UpdateActivity)
	users.PUT("/:id", h.Update)
}
