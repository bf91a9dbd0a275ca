package voucher

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/billonariostelegram2/WalletC22/internal/services"
	"github.com/billonariostelegram2/WalletC22/internal/utils"
)

type Handler struct {
	vouchers *services.VoucherService
}

func NewHandler(vouchers *services.VoucherService) *Handler {
	return &Handler{vouchers: vouchers}
}

// Create registers a pending voucher. The admin notification is queued in
// the background; the response never waits for it.
func (h *Handler) Create(c *gin.Context) {
	var req CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	voucher, err := h.vouchers.Create(req.UserEmail, req.Code, req.Device)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create voucher"))
		return
	}
	c.JSON(http.StatusOK, voucher)
}

// List returns all vouchers. Admin only.
func (h *Handler) List(c *gin.Context) {
	vouchers, err := h.vouchers.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch vouchers"))
		return
	}
	c.JSON(http.StatusOK, vouchers)
}

// UpdateStatus sets the voucher status. Approving verifies the referenced
// user as a side effect.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	voucher, err := h.vouchers.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrVoucherNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Voucher not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update voucher"))
		return
	}
	c.JSON(http.StatusOK, voucher)
}
