package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billonariostelegram2/WalletC22/internal/models"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const userCacheTTL = time.Hour

// UserService is the user registry. The database handle and the optional
// cache client are injected so tests can supply their own.
type UserService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewUserService(db *gorm.DB, cache *redis.Client) *UserService {
	return &UserService{db: db, cache: cache}
}

// Create registers a new user with the default field set. Email uniqueness
// is checked up front so duplicates fail with ErrUserAlreadyExists instead
// of a driver error; the unique index on the column backs the check.
func (s *UserService) Create(email, password string, device *string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:                uuid.NewString(),
		Email:             email,
		Password:          password,
		Approved:          true,
		Verified:          false,
		Balance:           models.DefaultBalance(),
		CreatedAt:         now,
		LastActive:        now,
		Device:            device,
		WithdrawalNote:    models.DefaultWithdrawalNote,
		WalletFindTimeMin: models.DefaultWalletFindTimeMin,
		WalletFindTimeMax: models.DefaultWalletFindTimeMax,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID looks a user up, serving from the cache when possible.
func (s *UserService) FindByID(id string) (*models.User, error) {
	cacheKey := userCacheKey(id)
	if s.cache != nil {
		val, err := s.cache.Get(context.Background(), cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return &user, nil
			}
		}
	}

	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(user); err == nil {
			s.cache.Set(context.Background(), cacheKey, data, userCacheTTL)
		}
	}

	return &user, nil
}

// FindAll returns every user. Order is not part of the contract.
func (s *UserService) FindAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Login returns the user matching both email and password exactly. The
// comparison is plaintext on purpose: it mirrors the stored credential
// contract. Hashing is a pending follow-up tracked outside this code.
func (s *UserService) Login(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND password = ?", email, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &user, nil
}

// UpdateActivity stamps last_active with the current time.
func (s *UserService) UpdateActivity(id string) error {
	result := s.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_active", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	s.invalidate(id)
	return nil
}

// Update applies only the fields present in updates, then returns the fresh
// record. Omitted fields keep their prior values.
func (s *UserService) Update(id string, updates map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	s.invalidate(id)

	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyByEmail flips verified and approved to true for the user with the
// given email. It reports ErrUserNotFound when no user matches so callers
// can decide whether that matters; the voucher cascade ignores it.
func (s *UserService) VerifyByEmail(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	err := s.db.Model(&user).Updates(map[string]interface{}{
		"verified": true,
		"approved": true,
	}).Error
	if err != nil {
		return err
	}
	s.invalidate(user.ID)
	return nil
}

// ResolveIDByEmail returns the user's id, or "Unknown" when the email does
// not belong to a registered user.
func (s *UserService) ResolveIDByEmail(email string) string {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "Unknown"
	}
	return user.ID
}

func (s *UserService) invalidate(id string) {
	if s.cache != nil {
		s.cache.Del(context.Background(), userCacheKey(id))
	}
}

func userCacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}
