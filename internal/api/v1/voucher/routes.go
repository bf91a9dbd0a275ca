package voucher

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	vouchers := router.Group("/vouchers")
	vouchers.POST("", h.Create)
	vouchers.GET("", h.List)
	vouchers.PUT("/:id", h.UpdateStatus)
}
