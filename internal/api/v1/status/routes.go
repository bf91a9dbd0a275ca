package status

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/status", h.Create)
	router.GET("/status", h.List)
}
