package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
	"github.com/dethrtrns/techwondoe-test-task/internal/logger"
	"github.com/dethrtrns/techwondoe-test-task/internal/middleware"
	"github.com/dethrtrns/techwondoe-test-task/internal/service"
)

// UserHandler handles the user CRUD endpoints of the settings API.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// AddUser handles POST /api/add
func (h *UserHandler) AddUser(c *gin.Context) {
	var form domain.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), form)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Create user failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsers handles GET /api/get
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("List users failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// updateUserRequest is the accepted update payload. Only name and role are
// patchable; any other field is rejected rather than silently merged.
type updateUserRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// UpdateUser handles PUT /api/update
func (h *UserHandler) UpdateUser(c *gin.Context) {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var req updateUserRequest
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Update payload may only contain id, name and role"})
		return
	}

	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing user ID"})
		return
	}

	patch := domain.UserPatch{Name: req.Name, Role: req.Role}
	user, err := h.users.UpdateUser(c.Request.Context(), req.ID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Update user failed",
			slog.String("user_id", req.ID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/delete. The id travels as a query
// parameter, never in the body.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing user ID"})
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Delete user failed",
			slog.String("user_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
