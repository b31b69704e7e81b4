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

var validOrderStatuses = map[string]bool{
	database.OrderStatusPending:    true,
	database.OrderStatusAccepted:   true,
	database.OrderStatusProcessing: true,
	database.OrderStatusCompleted:  true,
	database.OrderStatusCancelled:  true,
}

// CreateOrder handles order creation
func (h *Handler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}

	if req.UserID == 0 {
		errorx.Respond(c, errorx.Validation("user_id is required"))
		return
	}

	status := req.Status
	if status == "" {
		status = database.OrderStatusPending
	}
	if !validOrderStatuses[status] {
		errorx.Respond(c, errorx.Validation("Invalid order status"))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.db.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.Validation("User not found"))
			return
		}
		h.logger.Error("failed to look up user", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	order := &database.Order{
		UserID:       req.UserID,
		Status:       status,
		TotalAmount:  req.TotalAmount,
		HigherRoleID: req.HigherRoleID,
	}
	if err := h.db.CreateOrder(ctx, order); err != nil {
		h.logger.Error("failed to create order", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder handles fetching a single order by id
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid order id"))
		return
	}

	order, err := h.db.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Order not found"))
			return
		}
		h.logger.Error("failed to fetch order", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus handles order status transitions
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid order id"))
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}

	if !validOrderStatuses[req.Status] {
		errorx.Respond(c, errorx.Validation("Invalid order status"))
		return
	}

	if err := h.db.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Order not found"))
			return
		}
		h.logger.Error("failed to update order status", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
