package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portal-labs/application-portal-api/internal/dto"
	apierrors "github.com/portal-labs/application-portal-api/internal/errors"
	"github.com/portal-labs/application-portal-api/internal/models"
	"github.com/portal-labs/application-portal-api/internal/services"
)

// UserHandler coordinates the admin-only user management handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		apierrors.InternalError(c, "An error occurred while fetching users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	type CreateUserRequest struct {
		Username string            `json:"username" binding:"required,min=3,max=50"`
		Password string            `json:"password" binding:"required,min=6"`
		Email    *string           `json:"email" binding:"omitempty,email"`
		Role     models.Role       `json:"role" binding:"omitempty,oneof=user admin"`
		Status   models.UserStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			apierrors.BadRequest(c, "Username already exists")
			return
		}
		apierrors.InternalError(c, "An error occurred while creating user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Update merges the provided fields into an existing user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		Username *string            `json:"username" binding:"omitempty,min=3,max=50"`
		Password *string            `json:"password" binding:"omitempty,min=6"`
		Email    *string            `json:"email" binding:"omitempty,email"`
		Role     *models.Role       `json:"role" binding:"omitempty,oneof=user admin"`
		Status   *models.UserStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	user, err := h.userService.Update(id, services.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "An error occurred while updating user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Delete removes a user and their applications.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, services.ErrAdminProtected):
			apierrors.Forbidden(c, "Cannot delete admin user")
		default:
			apierrors.InternalError(c, "An error occurred while deleting user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}
