package models

import "time"

// DefaultWithdrawalNote is shown to users until an admin customizes it.
const DefaultWithdrawalNote = "The minimum withdrawal is 6000 EUR. If your balance is lower, keep searching wallets until you reach the minimum."

const (
	DefaultWalletFindTimeMin = 3
	DefaultWalletFindTimeMax = 10
)

type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Stored as provided. Plaintext comparison is the login contract the
	// frontend relies on; hashing is a pending follow-up.
	Password string  `gorm:"not null" json:"password"`
	Approved bool    `json:"approved"`
	Verified bool    `json:"verified"`
	Balance  Balance `gorm:"type:jsonb" json:"balance"`

	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`

	Device           *string `json:"device"`
	IsAdmin          bool    `json:"is_admin"`
	HasUsedFreeTrial bool    `json:"has_used_free_trial"`

	WithdrawalNote    string `json:"withdrawal_note"`
	WalletFindTimeMin int    `json:"wallet_find_time_min"`
	WalletFindTimeMax int    `json:"wallet_find_time_max"`
}
