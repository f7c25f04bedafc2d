package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booking/internal/domain"
	"booking/internal/pricing"
	"booking/internal/repository"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// RegisterRequest is the HTTP request body for user registration.
type RegisterRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Role          string `json:"role"` // customer or driver
	VehicleType   string `json:"vehicle_type,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name and phone are required"})
		return
	}

	role := domain.UserRole(req.Role)
	if role != domain.RoleCustomer && role != domain.RoleDriver {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role must be customer or driver"})
		return
	}

	if role == domain.RoleDriver {
		if req.VehicleNumber == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "vehicle_number is required for drivers"})
			return
		}
		if _, ok := pricing.VehicleTypeByID(req.VehicleType); !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown vehicle_type"})
			return
		}
	}

	// Phone numbers identify users; registering one twice is a conflict.
	existing, err := h.userRepo.GetByPhone(c.Request.Context(), req.Phone)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		respondError(c, err)
		return
	}

	if existing != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "phone number already registered"})
		return
	}

	user := &domain.User{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Phone:         req.Phone,
		Role:          role,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		CreatedAt:     time.Now(),
	}

	if err := h.userRepo.Create(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}

	c.JSON(http.StatusOK, response)
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Phone:         u.Phone,
		Role:          string(u.Role),
		VehicleType:   u.VehicleType,
		VehicleNumber: u.VehicleNumber,
	}
}
