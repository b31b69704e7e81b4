package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, ts *testServer, userID uint, status string, higherRoleID uint) *database.Order {
	t.Helper()
	order := &database.Order{UserID: userID, Status: status, TotalAmount: 250, HigherRoleID: higherRoleID}
	require.NoError(t, ts.db.CreateOrder(context.Background(), order))
	return order
}

func TestCreateFeedbackForAcceptedOrder(t *testing.T) {
	ts := newTestServer(t)
	token := ts.customerToken(t)
	order := seedOrder(t, ts, ts.customer.ID, database.OrderStatusAccepted, 3)

	body := dto.CreateFeedbackRequest{
		UserID:   uintPtr(ts.customer.ID),
		OrderID:  uintPtr(order.ID),
		Rating:   intPtr(4),
		Comments: "Good",
	}

	w := ts.do(t, http.MethodPost, "/api/feedback", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message  string            `json:"message"`
		Feedback database.Feedback `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feedback created successfully!", resp.Message)
	assert.Equal(t, 4, resp.Feedback.Rating)
	assert.False(t, resp.Feedback.FeedbackDate.IsZero())

	// only scalar columns are serialized, not the associations
	var raw struct {
		Feedback map[string]json.RawMessage `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw.Feedback, "user")
	assert.NotContains(t, raw.Feedback, "order")

	// repeating the identical call is a conflict
	w = ts.do(t, http.MethodPost, "/api/feedback", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Feedback already submitted for this order.")
}

func TestCreateFeedbackRejectsBadRating(t *testing.T) {
	ts := newTestServer(t)
	token := ts.customerToken(t)
	order := seedOrder(t, ts, ts.customer.ID, database.OrderStatusCompleted, 1)

	for _, rating := range []int{0, -1, 6} {
		body := dto.CreateFeedbackRequest{
			UserID:   uintPtr(ts.customer.ID),
			OrderID:  uintPtr(order.ID),
			Rating:   intPtr(rating),
			Comments: "whatever",
		}
		w := ts.do(t, http.MethodPost, "/api/feedback", token, body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Rating must be between 1 and 5.")
	}

	// no record was written
	_, err := ts.db.GetFeedbackByUserAndOrder(context.Background(), ts.customer.ID, order.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCreateFeedbackRejectsMissingFields(t *testing.T) {
	ts := newTestServer(t)
	token := ts.customerToken(t)

	cases := []dto.CreateFeedbackRequest{
		{OrderID: uintPtr(1), Rating: intPtr(4), Comments: "x"},
		{UserID: uintPtr(1), Rating: intPtr(4), Comments: "x"},
		{UserID: uintPtr(1), OrderID: uintPtr(1), Comments: "x"},
		{UserID: uintPtr(1), OrderID: uintPtr(1), Rating: intPtr(4)},
	}
	for _, body := range cases {
		w := ts.do(t, http.MethodPost, "/api/feedback", token, body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required fields.")
	}
}

func TestCreateFeedbackRejectsIneligibleOrder(t *testing.T) {
	ts := newTestServer(t)
	token := ts.customerToken(t)

	pending := seedOrder(t, ts, ts.customer.ID, database.OrderStatusPending, 1)

	body := dto.CreateFeedbackRequest{
		UserID:   uintPtr(ts.customer.ID),
		OrderID:  uintPtr(pending.ID),
		Rating:   intPtr(5),
		Comments: "too early",
	}
	w := ts.do(t, http.MethodPost, "/api/feedback", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found or not completed.")

	// an order owned by someone else is also ineligible
	other := seedOrder(t, ts, ts.admin.ID, database.OrderStatusCompleted, 1)
	body.OrderID = uintPtr(other.ID)
	w = ts.do(t, http.MethodPost, "/api/feedback", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found or not completed.")
}

func TestFeedbackRequiresAuth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/api/feedback", "", dto.CreateFeedbackRequest{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetFeedbackForHierarchy(t *testing.T) {
	ts := newTestServer(t)
	token := ts.customerToken(t)

	order := seedOrder(t, ts, ts.customer.ID, database.OrderStatusCompleted, 7)
	require.NoError(t, ts.db.CreateFeedback(context.Background(), &database.Feedback{
		UserID: ts.customer.ID, OrderID: order.ID, Rating: 5, Comments: "great",
	}))

	w := ts.do(t, http.MethodGet, "/api/feedback/hierarchy/7", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Feedbacks []dto.FeedbackWithUser `json:"feedbacks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Feedbacks, 1)
	assert.Equal(t, "alice", resp.Feedbacks[0].User.Username)
	assert.Equal(t, "Alice B", resp.Feedbacks[0].User.FullName)

	// empty result is a client-visible not-found
	w = ts.do(t, http.MethodGet, "/api/feedback/hierarchy/999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No feedback found for this hierarchy.")
}

func TestGetFeedbackForCustomer(t *testing.T) {
	ts := newTestServer(t)
	token := ts.customerToken(t)

	order := seedOrder(t, ts, ts.customer.ID, database.OrderStatusAccepted, 2)
	require.NoError(t, ts.db.CreateFeedback(context.Background(), &database.Feedback{
		UserID: ts.customer.ID, OrderID: order.ID, Rating: 3, Comments: "ok",
	}))

	path := "/api/feedback/customer/" + itoa(ts.customer.ID)
	w := ts.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Feedbacks []dto.FeedbackDetail `json:"feedbacks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Feedbacks, 1)
	assert.Equal(t, order.ID, resp.Feedbacks[0].Order.ID)
	assert.Equal(t, database.OrderStatusAccepted, resp.Feedbacks[0].Order.Status)
	assert.Equal(t, float64(250), resp.Feedbacks[0].Order.TotalAmount)

	w = ts.do(t, http.MethodGet, "/api/feedback/customer/424242", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No feedback found for this customer.")
}
