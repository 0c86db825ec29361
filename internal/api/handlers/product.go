package handlers

import (
	"net/http"
	"strconv"

	apperrors "bilemo-backend/internal/errors"
	"bilemo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts handles GET /products/:uuid
// @Summary List products for an enterprise
// @Description Get all products owned by the enterprise identified by UUID
// @Tags products
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Success 200 {array} service.ProductResponse "Products of the enterprise"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /products/{uuid} [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise UUID: invalid UUID format"})
		return
	}

	products, err := h.service.ListByEnterprise(uid)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /product/:uuid/:productId
// @Summary Get one product
// @Description Get a product by id within the enterprise identified by UUID
// @Tags products
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Param productId path int true "Product ID"
// @Success 200 {object} service.ProductResponse "Successfully retrieved product"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or product ID"
// @Failure 404 {object} map[string]interface{} "Enterprise or product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /product/{uuid}/{productId} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	uid, productID, ok := h.parseParams(c)
	if !ok {
		return
	}

	product, err := h.service.Get(uid, productID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products
// @Summary Create a new product
// @Description Create a product under the enterprise named by the uuid field
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} service.ProductResponse "Successfully created product"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /product/:uuid/:productId
// @Summary Update product
// @Description Partially update a product; absent fields keep their values
// @Tags products
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Param productId path int true "Product ID"
// @Param product body service.UpdateProductRequest true "Fields to update"
// @Success 200 {object} service.ProductResponse "Successfully updated product"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Enterprise or product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /product/{uuid}/{productId} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	uid, productID, ok := h.parseParams(c)
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.service.Update(uid, productID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /product/:uuid/:productId
// @Summary Delete product
// @Description Permanently delete a product within the enterprise
// @Tags products
// @Accept json
// @Produce json
// @Param uuid path string true "Enterprise UUID"
// @Param productId path int true "Product ID"
// @Success 204 "Product deleted"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or product ID"
// @Failure 404 {object} map[string]interface{} "Enterprise or product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /product/{uuid}/{productId} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	uid, productID, ok := h.parseParams(c)
	if !ok {
		return
	}

	if err := h.service.Delete(uid, productID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) parseParams(c *gin.Context) (uuid.UUID, uint, bool) {
	uid, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise UUID: invalid UUID format"})
		return uuid.Nil, 0, false
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return uuid.Nil, 0, false
	}

	return uid, uint(productID), true
}
