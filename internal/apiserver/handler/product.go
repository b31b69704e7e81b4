package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/dto"
	"github.com/distrilink/fieldsales/internal/common/errorx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// validateProductInput enforces the product shape rules before any
// persistence is attempted.
func validateProductInput(req *dto.ProductInput) *errorx.APIError {
	if req.Name == "" {
		return errorx.Validation("Product name is required")
	}
	if req.ProductCode == "" {
		return errorx.Validation("Product Id is required")
	}
	if req.ProductVolume == "" {
		return errorx.Validation("Product volume is required")
	}
	if req.Price == nil {
		return errorx.Validation("MRP price must be a decimal number")
	}
	if req.AdoPrice == nil {
		return errorx.Validation("ADO price must be a decimal number")
	}
	if req.MdPrice == nil {
		return errorx.Validation("MD price must be a decimal number")
	}
	if req.SdPrice == nil {
		return errorx.Validation("SD price must be a decimal number")
	}
	if req.DistributorPrice == nil {
		return errorx.Validation("Distributor price must be a decimal number")
	}
	if req.Status == nil {
		return errorx.Validation("Activate status must be a boolean")
	}
	if req.Image != "" && !isValidImage(req.Image) {
		return errorx.Validation("Image must be a valid URL or file path")
	}
	return nil
}

// isValidImage accepts an absolute URL or a .jpg/.png file path.
func isValidImage(image string) bool {
	return strings.HasPrefix(image, "http://") ||
		strings.HasPrefix(image, "https://") ||
		strings.HasSuffix(image, ".jpg") ||
		strings.HasSuffix(image, ".png")
}

// CreateProduct handles product creation
func (h *Handler) CreateProduct(c *gin.Context) {
	var req dto.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}

	if verr := validateProductInput(&req); verr != nil {
		errorx.Respond(c, verr)
		return
	}

	ctx := c.Request.Context()

	// A product with the same name must not exist, soft-deleted or not
	if _, err := h.db.GetProductByName(ctx, req.Name); err == nil {
		errorx.Respond(c, errorx.Conflict("Product with this name already exists"))
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to look up product", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	var createdBy uint
	if claims, ok := callerClaims(c); ok {
		createdBy = claims.UserID
	}

	product := &database.Product{
		Name:             req.Name,
		ProductCode:      req.ProductCode,
		ProductVolume:    req.ProductVolume,
		Price:            *req.Price,
		AdoPrice:         *req.AdoPrice,
		MdPrice:          *req.MdPrice,
		SdPrice:          *req.SdPrice,
		DistributorPrice: *req.DistributorPrice,
		Status:           *req.Status,
		Image:            req.Image,
		CreatedBy:        createdBy,
	}
	if err := h.db.CreateProduct(ctx, product); err != nil {
		// Backstop for a pre-check race: the unique index wins.
		if errors.Is(err, database.ErrDuplicate) {
			errorx.Respond(c, errorx.Conflict("Product with this name already exists"))
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles product updates. The existing image reference is
// preserved when no new one is supplied.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid product id"))
		return
	}

	var req dto.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}

	if verr := validateProductInput(&req); verr != nil {
		errorx.Respond(c, verr)
		return
	}

	ctx := c.Request.Context()

	product, err := h.db.GetProductByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Product not found"))
			return
		}
		h.logger.Error("failed to fetch product", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	product.Name = req.Name
	product.ProductCode = req.ProductCode
	product.ProductVolume = req.ProductVolume
	product.Price = *req.Price
	product.AdoPrice = *req.AdoPrice
	product.MdPrice = *req.MdPrice
	product.SdPrice = *req.SdPrice
	product.DistributorPrice = *req.DistributorPrice
	product.Status = *req.Status
	if req.Image != "" {
		product.Image = req.Image
	}

	if err := h.db.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			errorx.Respond(c, errorx.Conflict("Product with this name already exists"))
			return
		}
		h.logger.Error("failed to update product", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts handles the administrative listing: soft-deleted products are
// excluded, inactive ones are not.
func (h *Handler) ListProducts(c *gin.Context) {
	h.listProducts(c, false)
}

// ListProductsForUser handles the customer-facing listing: soft-deleted and
// inactive products are both excluded.
func (h *Handler) ListProductsForUser(c *gin.Context) {
	h.listProducts(c, true)
}

func (h *Handler) listProducts(c *gin.Context, visibleOnly bool) {
	products, err := h.db.ListProducts(c.Request.Context(), visibleOnly)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles fetching a single product by id
func (h *Handler) GetProduct(c *gin.Context) {
	h.getProduct(c, false)
}

// GetProductForUser handles the customer-facing single product lookup
func (h *Handler) GetProductForUser(c *gin.Context) {
	h.getProduct(c, true)
}

func (h *Handler) getProduct(c *gin.Context, visibleOnly bool) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid product id"))
		return
	}

	product, err := h.db.GetProductByID(c.Request.Context(), id, visibleOnly)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Product not found"))
			return
		}
		h.logger.Error("failed to fetch product", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct soft-deletes a product. The route is gated on the Admin
// role by middleware.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid product id"))
		return
	}

	if err := h.db.SoftDeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Product not found"))
			return
		}
		h.logger.Error("failed to delete product", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
