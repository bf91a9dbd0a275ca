package status

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/billonariostelegram2/WalletC22/internal/services"
	"github.com/billonariostelegram2/WalletC22/internal/utils"
)

type CreateStatusRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

type Handler struct {
	checks *services.StatusService
}

func NewHandler(checks *services.StatusService) *Handler {
	return &Handler{checks: checks}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	check, err := h.checks.Create(req.ClientName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create status check"))
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *Handler) List(c *gin.Context) {
	checks, err := h.checks.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch status checks"))
		return
	}
	c.JSON(http.StatusOK, checks)
}
