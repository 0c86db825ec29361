package handlers

import (
	"net/http"
	"strconv"

	apperrors "bilemo-backend/internal/errors"
	"bilemo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for users, always scoped to an
// enterprise resolved by its public UUID.
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /users/:uuid
// @Summary List users for an enterprise
// @Description Get all users owned by the enterprise identified by UUID
// @Tags users
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Success 200 {array} service.UserResponse "Users of the enterprise"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/{uuid} [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise UUID: invalid UUID format"})
		return
	}

	users, err := h.service.ListByEnterprise(uid)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /user/:uuid/:userId
// @Summary Get one user
// @Description Get a user by id within the enterprise identified by UUID
// @Tags users
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Param userId path int true "User ID"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or user ID"
// @Failure 404 {object} map[string]interface{} "Enterprise or user not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /user/{uuid}/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	uid, userID, ok := h.parseParams(c)
	if !ok {
		return
	}

	user, err := h.service.Get(uid, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description Create a user under the enterprise named by the uuid field
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /user/:uuid/:userId
// @Summary Update user
// @Description Partially update a user; absent fields keep their values
// @Tags users
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Param userId path int true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to update"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Enterprise or user not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /user/{uuid}/{userId} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	uid, userID, ok := h.parseParams(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Update(uid, userID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /user/:uuid/:userId
// @Summary Delete user
// @Description Permanently delete a user within the enterprise
// @Tags users
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Param userId path int true "User ID"
// @Success 204 "User deleted"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or user ID"
// @Failure 404 {object} map[string]interface{} "Enterprise or user not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /user/{uuid}/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	uid, userID, ok := h.parseParams(c)
	if !ok {
		return
	}

	if err := h.service.Delete(uid, userID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) parseParams(c *gin.Context) (uuid.UUID, uint, bool) {
	uid, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise UUID: invalid UUID format"})
		return uuid.Nil, 0, false
	}

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return uuid.Nil, 0, false
	}

	return uid, uint(userID), true
}
