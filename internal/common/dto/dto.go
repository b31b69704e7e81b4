package dto

import (
	"encoding/json"
	"time"
)

// SignupRequest represents a signup request
type SignupRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
}

// SigninRequest represents a signin request
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the restricted user payload returned to clients
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// CreateFeedbackRequest carries a feedback submission. Pointer fields
// distinguish absent values from zero values so missing-field rejection
// matches the eligibility rules.
type CreateFeedbackRequest struct {
	UserID   *uint  `json:"user_id"`
	OrderID  *uint  `json:"order_id"`
	Rating   *int   `json:"rating"`
	Comments string `json:"comments"`
}

// UserSummary is the restricted user projection used by feedback views
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// OrderSummary is the restricted order projection used by feedback views
type OrderSummary struct {
	ID          uint    `json:"id"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

// FeedbackWithUser is the hierarchy view row
type FeedbackWithUser struct {
	ID           uint        `json:"id"`
	UserID       uint        `json:"user_id"`
	OrderID      uint        `json:"order_id"`
	Rating       int         `json:"rating"`
	Comments     string      `json:"comments"`
	FeedbackDate time.Time   `json:"feedback_date"`
	User         UserSummary `json:"user"`
}

// FeedbackDetail is the customer view row
type FeedbackDetail struct {
	FeedbackWithUser
	Order OrderSummary `json:"order"`
}

// ProductInput carries a product create/update payload. Pointer fields let
// the validation gate distinguish absent prices and status from zero values.
type ProductInput struct {
	Name             string   `json:"name"`
	ProductCode      string   `json:"product_code"`
	ProductVolume    string   `json:"productVolume"`
	Price            *float64 `json:"price"`
	AdoPrice         *float64 `json:"adoPrice"`
	MdPrice          *float64 `json:"mdPrice"`
	SdPrice          *float64 `json:"sdPrice"`
	DistributorPrice *float64 `json:"distributorPrice"`
	Status           *bool    `json:"status"`
	Image            string   `json:"image"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	UserID       uint    `json:"user_id"`
	TotalAmount  float64 `json:"total_amount"`
	HigherRoleID uint    `json:"higher_role_id"`
	Status       string  `json:"status"`
}

// UpdateOrderStatusRequest represents an order status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// SectorRequest carries a sector create/update payload
type SectorRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OrderLimitRequest carries the single hours configuration value
type OrderLimitRequest struct {
	Hours *int `json:"hours"`
}

// SalesTargetRequest carries a sales target payload for a distributor tier
type SalesTargetRequest struct {
	Role        string          `json:"role"`
	ProductData json.RawMessage `json:"productData"`
}
