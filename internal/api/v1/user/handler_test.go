package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/billonariostelegram2/WalletC22/internal/api/v1/user"
	"github.com/billonariostelegram2/WalletC22/internal/models"
	"github.com/billonariostelegram2/WalletC22/internal/services"
)

func setupRouter(t *testing.T) (*gin.Engine, *services.UserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	svc := services.NewUserService(db, nil)
	r := gin.New()
	api := r.Group("/api")
	user.RegisterRoutes(api, user.NewHandler(svc))
	return r, svc
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		seed           bool
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "Success",
			body:           `{"email":"a@x.com","password":"p"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var u models.User
				assert.NoError(t, json.Unmarshal(body, &u))
				assert.NotEmpty(t, u.ID)
				assert.True(t, u.Approved)
				assert.False(t, u.Verified)
				assert.Equal(t, models.Balance{"BTC": 0, "ETH": 0, "LTC": 0}, u.Balance)
			},
		},
		{
			name:           "Duplicate Email",
			body:           `{"email":"a@x.com","password":"different","device":"ios"}`,
			seed:           true,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "User already exists")
			},
		},
		{
			name:           "Missing Password",
			body:           `{"email":"a@x.com"}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Invalid Body",
			body:           `{invalid json}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := setupRouter(t)
			if tt.seed {
				_, err := svc.Create("a@x.com", "p", nil)
				assert.NoError(t, err)
			}

			req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	r, svc := setupRouter(t)
	created, err := svc.Create("a@x.com", "p", nil)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api/users/"+created.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var u models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, created.ID, u.ID)

	req, _ = http.NewRequest(http.MethodGet, "/api/users/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsers(t *testing.T) {
	r, svc := setupRouter(t)
	_, err := svc.Create("a@x.com", "p", nil)
	assert.NoError(t, err)
	_, err = svc.Create("b@x.com", "p", nil)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"Success", "email=a@x.com&password=p", http.StatusOK},
		{"Wrong Password", "email=a@x.com&password=bad", http.StatusUnauthorized},
		{"Unknown Email", "email=b@x.com&password=p", http.StatusUnauthorized},
		{"Empty Credentials", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := setupRouter(t)
			_, err := svc.Create("a@x.com", "p", nil)
			assert.NoError(t, err)

			req, _ := http.NewRequest(http.MethodPost, "/api/users/login?"+tt.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUpdateActivity(t *testing.T) {
	r, svc := setupRouter(t)
	created, err := svc.Create("a@x.com", "p", nil)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPut, "/api/users/"+created.ID+"/activity", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Activity updated")

	req, _ = http.NewRequest(http.MethodPut, "/api/users/missing/activity", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		useCreatedID   bool
		expectedStatus int
		checkResponse  func(t *testing.T, before models.User, body []byte)
	}{
		{
			name:           "Sparse Balance Update",
			body:           `{"balance":{"BTC":0.25,"ETH":0,"LTC":0}}`,
			useCreatedID:   true,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, before models.User, body []byte) {
				var u models.User
				assert.NoError(t, json.Unmarshal(body, &u))
				assert.Equal(t, models.Balance{"BTC": 0.25, "ETH": 0, "LTC": 0}, u.Balance)
				// Untouched fields survive the patch.
				assert.Equal(t, before.Email, u.Email)
				assert.Equal(t, before.Password, u.Password)
				assert.Equal(t, before.Verified, u.Verified)
				assert.Equal(t, before.WithdrawalNote, u.WithdrawalNote)
			},
		},
		{
			name:           "Verify User",
			body:           `{"verified":true}`,
			useCreatedID:   true,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, before models.User, body []byte) {
				var u models.User
				assert.NoError(t, json.Unmarshal(body, &u))
				assert.True(t, u.Verified)
				assert.Equal(t, before.Balance, u.Balance)
			},
		},
		{
			name:           "Wait Time Bounds",
			body:           `{"wallet_find_time_min":1,"wallet_find_time_max":5}`,
			useCreatedID:   true,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, before models.User, body []byte) {
				var u models.User
				assert.NoError(t, json.Unmarshal(body, &u))
				assert.Equal(t, 1, u.WalletFindTimeMin)
				assert.Equal(t, 5, u.WalletFindTimeMax)
			},
		},
		{
			name:           "User Not Found",
			body:           `{"verified":true}`,
			useCreatedID:   false,
			expectedStatus: http.StatusNotFound,
			checkResponse:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := setupRouter(t)
			created, err := svc.Create("a@x.com", "p", nil)
			assert.NoError(t, err)

			targetID := "missing"
			if tt.useCreatedID {
				targetID = created.ID
			}

			req, _ := http.NewRequest(http.MethodPut, "/api/users/"+targetID, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, *created, w.Body.Bytes())
			}
		})
	}
}
