package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/billonariostelegram2/WalletC22/internal/api/v1/status"
	"github.com/billonariostelegram2/WalletC22/internal/api/v1/user"
	"github.com/billonariostelegram2/WalletC22/internal/api/v1/voucher"
	"github.com/billonariostelegram2/WalletC22/internal/middleware"
	"github.com/billonariostelegram2/WalletC22/internal/services"
)

// Deps carries everything the router needs. Connections are owned by the
// caller; the router only wires handlers.
type Deps struct {
	Log      *zap.Logger
	Users    *services.UserService
	Vouchers *services.VoucherService
	Checks   *services.StatusService
}

func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(deps.Log))

	// The frontend is served from changing preview domains, so CORS stays
	// wide open.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          300,
	}))

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
		})

		status.RegisterRoutes(api, status.NewHandler(deps.Checks))
		user.RegisterRoutes(api, user.NewHandler(deps.Users))
		voucher.RegisterRoutes(api, voucher.NewHandler(deps.Vouchers))
	}

	return router
}
