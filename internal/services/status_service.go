package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billonariostelegram2/WalletC22/internal/models"
)

// StatusService records client liveness pings.
type StatusService struct {
	db *gorm.DB
}

func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{db: db}
}

func (s *StatusService) Create(clientName string) (*models.StatusCheck, error) {
	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.db.Create(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *StatusService) FindAll() ([]models.StatusCheck, error) {
	var checks []models.StatusCheck
	if err := s.db.Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}
