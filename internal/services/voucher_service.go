package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billonariostelegram2/WalletC22/internal/models"
	"github.com/billonariostelegram2/WalletC22/internal/notify"
)

var ErrVoucherNotFound = errors.New("voucher not found")

// Notifier is the dispatch half of the notification pipeline. The voucher
// registry only enqueues; it never waits for delivery.
type Notifier interface {
	Enqueue(n notify.VoucherNotification) bool
}

// VoucherService is the voucher registry. It leans on the user registry for
// the approval cascade and on the notifier for the creation side effect.
type VoucherService struct {
	db       *gorm.DB
	users    *UserService
	notifier Notifier
}

func NewVoucherService(db *gorm.DB, users *UserService, notifier Notifier) *VoucherService {
	return &VoucherService{db: db, users: users, notifier: notifier}
}

// Create persists a pending voucher and enqueues the admin notification.
// The notification is best effort: a full queue or a delivery failure never
// affects the returned voucher.
func (s *VoucherService) Create(userEmail, code string, device *string) (*models.Voucher, error) {
	voucher := models.Voucher{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		Code:      code,
		Status:    models.VoucherStatusPending,
		Date:      time.Now().UTC(),
		Device:    device,
	}

	if err := s.db.Create(&voucher).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(notify.VoucherNotification{
			UserEmail:   voucher.UserEmail,
			VoucherCode: voucher.Code,
			UserID:      s.users.ResolveIDByEmail(voucher.UserEmail),
			CreatedAt:   voucher.Date,
		})
	}

	return &voucher, nil
}

// FindAll returns every voucher.
func (s *VoucherService) FindAll() ([]models.Voucher, error) {
	var vouchers []models.Voucher
	if err := s.db.Find(&vouchers).Error; err != nil {
		return nil, err
	}
	return vouchers, nil
}

// UpdateStatus sets the voucher's status. Transitions are unconstrained.
// Moving into approved cascades into the referenced user: verified and
// approved both become true. A voucher whose email matches no user still
// updates; the cascade is skipped silently.
func (s *VoucherService) UpdateStatus(id, status string) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := s.db.Where("id = ?", id).First(&voucher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&voucher).Update("status", status).Error; err != nil {
		return nil, err
	}

	if status == models.VoucherStatusApproved {
		if err := s.users.VerifyByEmail(voucher.UserEmail); err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	if err := s.db.Where("id = ?", id).First(&voucher).Error; err != nil {
		return nil, err
	}
	return &voucher, nil
}
