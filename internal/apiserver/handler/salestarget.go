package handler

import (
	"errors"
	"net/http"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/dto"
	"github.com/distrilink/fieldsales/internal/common/errorx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func isSalesTargetRole(role string) bool {
	for _, r := range database.SalesTargetRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CreateSalesTarget handles sales target creation for a distributor tier
func (h *Handler) CreateSalesTarget(c *gin.Context) {
	var req dto.SalesTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}

	if !isSalesTargetRole(req.Role) {
		errorx.Respond(c, errorx.Validation("Invalid sales target role"))
		return
	}
	if len(req.ProductData) == 0 {
		errorx.Respond(c, errorx.Validation("productData is required"))
		return
	}

	target := &database.SalesTarget{Role: req.Role, ProductData: req.ProductData}
	if err := h.db.CreateSalesTarget(c.Request.Context(), target); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			errorx.Respond(c, errorx.Conflict("Sales target already exists for this role"))
			return
		}
		h.logger.Error("failed to create sales target", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusCreated, target)
}

// ListSalesTargets handles listing all sales targets
func (h *Handler) ListSalesTargets(c *gin.Context) {
	targets, err := h.db.ListSalesTargets(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list sales targets", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}
	c.JSON(http.StatusOK, targets)
}

// GetSalesTarget handles fetching the sales target of a distributor tier
func (h *Handler) GetSalesTarget(c *gin.Context) {
	role := c.Param("role")
	target, err := h.db.GetSalesTargetByRole(c.Request.Context(), role)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Sales target not found"))
			return
		}
		h.logger.Error("failed to fetch sales target", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}
	c.JSON(http.StatusOK, target)
}

// UpdateSalesTarget replaces the product data of a tier's sales target
func (h *Handler) UpdateSalesTarget(c *gin.Context) {
	role := c.Param("role")

	var req dto.SalesTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}
	if len(req.ProductData) == 0 {
		errorx.Respond(c, errorx.Validation("productData is required"))
		return
	}

	ctx := c.Request.Context()
	target, err := h.db.GetSalesTargetByRole(ctx, role)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Sales target not found"))
			return
		}
		h.logger.Error("failed to fetch sales target", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	target.ProductData = req.ProductData
	if err := h.db.UpdateSalesTarget(ctx, target); err != nil {
		h.logger.Error("failed to update sales target", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusOK, target)
}

// DeleteSalesTarget removes the sales target of a distributor tier
func (h *Handler) DeleteSalesTarget(c *gin.Context) {
	role := c.Param("role")

	if err := h.db.DeleteSalesTargetByRole(c.Request.Context(), role); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Sales target not found"))
			return
		}
		h.logger.Error("failed to delete sales target", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sales target deleted successfully"})
}
