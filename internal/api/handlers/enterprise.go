package handlers

import (
	"errors"
	"net/http"

	apperrors "bilemo-backend/internal/errors"
	"bilemo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EnterpriseHandler handles HTTP requests for enterprises
type EnterpriseHandler struct {
	service service.EnterpriseServiceInterface
}

// NewEnterpriseHandler creates a new enterprise handler
func NewEnterpriseHandler(service service.EnterpriseServiceInterface) *EnterpriseHandler {
	return &EnterpriseHandler{service: service}
}

// GetEnterprise handles GET /enterprise/:uuid
// @Summary Get enterprise by UUID
// @Description Get an enterprise by its public UUID
// @Tags enterprises
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Success 200 {object} service.EnterpriseResponse "Successfully retrieved enterprise"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /enterprise/{uuid} [get]
func (h *EnterpriseHandler) GetEnterprise(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise UUID: invalid UUID format"})
		return
	}

	enterprise, err := h.service.GetByUUID(uid)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get enterprise", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enterprise)
}

// ListEnterprises handles GET /enterprises
// @Summary List enterprises
// @Description Get all enterprises
// @Tags enterprises
// @Accept json
// @Produce json
// @Success 200 {array} service.EnterpriseResponse "Successfully retrieved enterprises"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /enterprises [get]
func (h *EnterpriseHandler) ListEnterprises(c *gin.Context) {
	enterprises, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list enterprises", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enterprises)
}

// CreateEnterprise handles POST /enterprise
// @Summary Create a new enterprise
// @Description Create a new enterprise; a v4 UUID is assigned at creation
// @Tags enterprises
// @Accept json
// @Produce json
// @Param enterprise body service.CreateEnterpriseRequest true "Enterprise data"
// @Success 201 {object} service.EnterpriseResponse "Successfully created enterprise"
// @Failure 400 {object} map[string]interface{} "Missing required field: name"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /enterprise [post]
func (h *EnterpriseHandler) CreateEnterprise(c *gin.Context) {
	var req service.CreateEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	enterprise, err := h.service.Create(&req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Message == "name is required" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: name"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enterprise", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, enterprise)
}

// UpdateEnterprise handles PUT /enterprise/:uuid
// @Summary Update enterprise
// @Description Partially update an enterprise; absent fields keep their values
// @Tags enterprises
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Param enterprise body service.UpdateEnterpriseRequest true "Fields to update"
// @Success 200 {object} service.EnterpriseResponse "Successfully updated enterprise"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /enterprise/{uuid} [put]
func (h *EnterpriseHandler) UpdateEnterprise(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise UUID: invalid UUID format"})
		return
	}

	var req service.UpdateEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	enterprise, err := h.service.Update(uid, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enterprise", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enterprise)
}

// DeleteEnterprise handles DELETE /enterprise/:uuid
// @Summary Delete enterprise
// @Description Delete an enterprise; its users and products are cascade-deleted
// @Tags enterprises
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Success 204 "Enterprise deleted"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /enterprise/{uuid} [delete]
func (h *EnterpriseHandler) DeleteEnterprise(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise UUID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(uid); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete enterprise", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
