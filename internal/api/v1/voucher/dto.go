package voucher

type CreateVoucherRequest struct {
	UserEmail string  `json:"user_email" binding:"required"`
	Code      string  `json:"code" binding:"required"`
	Device    *string `json:"device"`
}

type UpdateVoucherRequest struct {
	Status string `json:"status" binding:"required"`
}
