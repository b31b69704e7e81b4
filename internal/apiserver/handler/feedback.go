package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/dto"
	"github.com/distrilink/fieldsales/internal/common/errorx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// feedbackEligibleStatuses lists the order statuses feedback is accepted
// for. Accepted orders are eligible alongside Completed ones; the rejection
// message is kept as-is for contract compatibility.
var feedbackEligibleStatuses = []string{
	database.OrderStatusCompleted,
	database.OrderStatusAccepted,
}

// CreateFeedback decides whether a feedback submission is permitted and
// persists it. One order read, one feedback read and one write on the
// success path; no writes on any rejection path.
func (h *Handler) CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation("Missing required fields."))
		return
	}

	if req.UserID == nil || req.OrderID == nil || req.Rating == nil || req.Comments == "" {
		errorx.Respond(c, errorx.Validation("Missing required fields."))
		return
	}

	if *req.Rating < 1 || *req.Rating > 5 {
		errorx.Respond(c, errorx.Validation("Rating must be between 1 and 5."))
		return
	}

	ctx := c.Request.Context()

	// The order must belong to the user and be completed or accepted
	if _, err := h.db.FindEligibleOrder(ctx, *req.OrderID, *req.UserID, feedbackEligibleStatuses); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.Validation("Order not found or not completed."))
			return
		}
		h.logger.Error("failed to look up order", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred while creating feedback."))
		return
	}

	// Only one feedback per (user, order) pair
	if _, err := h.db.GetFeedbackByUserAndOrder(ctx, *req.UserID, *req.OrderID); err == nil {
		errorx.Respond(c, errorx.Conflict("Feedback already submitted for this order."))
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to look up feedback", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred while creating feedback."))
		return
	}

	feedback := &database.Feedback{
		UserID:       *req.UserID,
		OrderID:      *req.OrderID,
		Rating:       *req.Rating,
		Comments:     req.Comments,
		FeedbackDate: time.Now(),
	}
	if err := h.db.CreateFeedback(ctx, feedback); err != nil {
		// Backstop for a pre-check race: the unique index wins.
		if errors.Is(err, database.ErrDuplicate) {
			errorx.Respond(c, errorx.Conflict("Feedback already submitted for this order."))
			return
		}
		h.logger.Error("failed to create feedback", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred while creating feedback."))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback created successfully!",
		"feedback": feedback,
	})
}

// GetFeedbackForHierarchy lists feedback routed through an approval
// hierarchy, each row joined with a restricted user projection.
func (h *Handler) GetFeedbackForHierarchy(c *gin.Context) {
	higherRoleID, ok := uintParam(c, "higher_role_id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid hierarchy id"))
		return
	}

	items, err := h.db.ListFeedbackByHigherRole(c.Request.Context(), higherRoleID)
	if err != nil {
		h.logger.Error("failed to fetch feedback for hierarchy", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred while fetching feedback."))
		return
	}

	if len(items) == 0 {
		errorx.Respond(c, errorx.NotFound("No feedback found for this hierarchy."))
		return
	}

	out := make([]dto.FeedbackWithUser, 0, len(items))
	for _, f := range items {
		out = append(out, feedbackWithUser(f))
	}
	c.JSON(http.StatusOK, gin.H{"feedbacks": out})
}

// GetFeedbackForCustomer lists a customer's feedback joined with restricted
// order and user projections.
func (h *Handler) GetFeedbackForCustomer(c *gin.Context) {
	customerID, ok := uintParam(c, "customer_id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid customer id"))
		return
	}

	items, err := h.db.ListFeedbackByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("failed to fetch feedback for customer", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred while fetching feedback for the customer."))
		return
	}

	if len(items) == 0 {
		errorx.Respond(c, errorx.NotFound("No feedback found for this customer."))
		return
	}

	out := make([]dto.FeedbackDetail, 0, len(items))
	for _, f := range items {
		out = append(out, dto.FeedbackDetail{
			FeedbackWithUser: feedbackWithUser(f),
			Order: dto.OrderSummary{
				ID:          f.Order.ID,
				TotalAmount: f.Order.TotalAmount,
				Status:      f.Order.Status,
			},
		})
	}
	c.JSON(http.StatusOK, gin.H{"feedbacks": out})
}

func feedbackWithUser(f *database.Feedback) dto.FeedbackWithUser {
	return dto.FeedbackWithUser{
		ID:           f.ID,
		UserID:       f.UserID,
		OrderID:      f.OrderID,
		Rating:       f.Rating,
		Comments:     f.Comments,
		FeedbackDate: f.FeedbackDate,
		User: dto.UserSummary{
			ID:       f.User.ID,
			Username: f.User.Username,
			FullName: f.User.FullName,
		},
	}
}
