package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/billonariostelegram2/WalletC22/internal/services"
	"github.com/billonariostelegram2/WalletC22/internal/utils"
)

type Handler struct {
	users *services.UserService
}

func NewHandler(users *services.UserService) *Handler {
	return &Handler{users: users}
}

// Create registers a new user.
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	user, err := h.users.Create(req.Email, req.Password, req.Device)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "User already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create user"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// List returns all users. Admin only.
func (h *Handler) List(c *gin.Context) {
	users, err := h.users.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns a single user by id.
func (h *Handler) Get(c *gin.Context) {
	user, err := h.users.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch user"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login matches email and password from query parameters, the way the
// frontend has always sent them.
func (h *Handler) Login(c *gin.Context) {
	email := c.Query("email")
	password := c.Query("password")

	user, err := h.users.Login(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to log in"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateActivity stamps the user's last_active field.
func (h *Handler) UpdateActivity(c *gin.Context) {
	if err := h.users.UpdateActivity(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update activity"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Activity updated"})
}

// Update applies a sparse patch. Admin only.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	user, err := h.users.Update(c.Param("id"), req.toUpdates())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update user"))
		return
	}
	c.JSON(http.StatusOK, user)
}
