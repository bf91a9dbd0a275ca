package user

import (
	"time"

	"github.com/billonariostelegram2/WalletC22/internal/models"
)

type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Device   *string `json:"device"`
}

// UpdateUserRequest is the admin patch payload. Every field is a pointer so
// an absent field can be told apart from a zero value; only present fields
// reach the database. is_admin is deliberately not here.
type UpdateUserRequest struct {
	Approved          *bool           `json:"approved,omitempty"`
	Verified          *bool           `json:"verified,omitempty"`
	Balance           *models.Balance `json:"balance,omitempty"`
	WithdrawalNote    *string         `json:"withdrawal_note,omitempty"`
	WalletFindTimeMin *int            `json:"wallet_find_time_min,omitempty"`
	WalletFindTimeMax *int            `json:"wallet_find_time_max,omitempty"`
	LastActive        *time.Time      `json:"last_active,omitempty"`
}

func (r *UpdateUserRequest) toUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Approved != nil {
		updates["approved"] = *r.Approved
	}
	if r.Verified != nil {
		updates["verified"] = *r.Verified
	}
	if r.Balance != nil {
		updates["balance"] = *r.Balance
	}
	if r.WithdrawalNote != nil {
		updates["withdrawal_note"] = *r.WithdrawalNote
	}
	if r.WalletFindTimeMin != nil {
		updates["wallet_find_time_min"] = *r.WalletFindTimeMin
	}
	if r.WalletFindTimeMax != nil {
		updates["wallet_find_time_max"] = *r.WalletFindTimeMax
	}
	if r.LastActive != nil {
		updates["last_active"] = *r.LastActive
	}
	return updates
}
