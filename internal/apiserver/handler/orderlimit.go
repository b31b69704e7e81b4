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

// ListOrderLimits handles listing all order limits
func (h *Handler) ListOrderLimits(c *gin.Context) {
	limits, err := h.db.ListOrderLimits(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to fetch order limits", zap.Error(err))
		errorx.Respond(c, errorx.Internal("Error fetching order limits"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": limits})
}

// CreateOrderLimit handles order limit creation
func (h *Handler) CreateOrderLimit(c *gin.Context) {
	var req dto.OrderLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}
	if req.Hours == nil {
		errorx.Respond(c, errorx.Validation("hours is required"))
		return
	}

	limit := &database.OrderLimit{Hours: *req.Hours}
	if err := h.db.CreateOrderLimit(c.Request.Context(), limit); err != nil {
		h.logger.Error("failed to create order limit", zap.Error(err))
		errorx.Respond(c, errorx.Internal("Failed to create order limit"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order limit created successfully", "data": limit})
}

// UpdateOrderLimit handles order limit updates
func (h *Handler) UpdateOrderLimit(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid order limit id"))
		return
	}

	var req dto.OrderLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}
	if req.Hours == nil {
		errorx.Respond(c, errorx.Validation("hours is required"))
		return
	}

	ctx := c.Request.Context()
	limit, err := h.db.GetOrderLimitByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Order limit not found"))
			return
		}
		h.logger.Error("failed to fetch order limit", zap.Error(err))
		errorx.Respond(c, errorx.Internal("Failed to update order limit"))
		return
	}

	limit.Hours = *req.Hours
	if err := h.db.UpdateOrderLimit(ctx, limit); err != nil {
		h.logger.Error("failed to update order limit", zap.Error(err))
		errorx.Respond(c, errorx.Internal("Failed to update order limit"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order limit updated successfully", "data": limit})
}

// DeleteOrderLimit handles order limit deletion
func (h *Handler) DeleteOrderLimit(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid order limit id"))
		return
	}

	if err := h.db.DeleteOrderLimit(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Order limit not found"))
			return
		}
		h.logger.Error("failed to delete order limit", zap.Error(err))
		errorx.Respond(c, errorx.Internal("Failed to delete order limit"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order limit deleted successfully"})
}
