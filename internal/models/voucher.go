package models

import "time"

// Voucher status values. Transitions are deliberately unconstrained: an
// admin may re-approve or move a rejected voucher back to approved.
const (
	VoucherStatusPending  = "pending"
	VoucherStatusApproved = "approved"
	VoucherStatusRejected = "rejected"
)

type Voucher struct {
	ID string `gorm:"primaryKey" json:"id"`
	// UserEmail is a soft reference: the user is not required to exist.
	UserEmail string    `gorm:"index;not null" json:"user_email"`
	Code      string    `gorm:"not null" json:"code"`
	Status    string    `gorm:"not null" json:"status"`
	Date      time.Time `json:"date"`
	Device    *string   `json:"device"`
}
