package database

import (
	"encoding/json"
	"time"
)

// Role names with special meaning. RoleAdmin guards destructive operations.
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// Role represents a user role
type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	RoleName  string    `json:"role_name" gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User represents an account. One Role owns many Users.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"type:varchar(100)"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	RoleID    uint      `json:"role_id" gorm:"not null;index"`
	Role      Role      `json:"role" gorm:"foreignKey:RoleID"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Order statuses. Feedback is only accepted for Completed or Accepted orders.
const (
	OrderStatusPending    = "Pending"
	OrderStatusAccepted   = "Accepted"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// Order belongs to exactly one User. HigherRoleID references the approval
// hierarchy the order was routed through.
type Order struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	User         User      `json:"-" gorm:"foreignKey:UserID"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`
	TotalAmount  float64   `json:"total_amount"`
	HigherRoleID uint      `json:"higher_role_id" gorm:"index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Feedback belongs to exactly one User and one Order. The composite unique
// index backs the one-feedback-per-(user, order) rule so a lost pre-check
// race still fails at the store.
type Feedback struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_feedback_user_order"`
	User         User      `json:"-" gorm:"foreignKey:UserID"`
	OrderID      uint      `json:"order_id" gorm:"not null;uniqueIndex:idx_feedback_user_order"`
	Order        Order     `json:"-" gorm:"foreignKey:OrderID"`
	Rating       int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comments     string    `json:"comments" gorm:"type:text"`
	FeedbackDate time.Time `json:"feedback_date"`
}

// TableName sets custom table name
func (Feedback) TableName() string { return "feedback" }

// Product carries the tiered distributor price ladder. IsDeleted is a soft
// delete flag; rows are never physically removed, and name uniqueness spans
// soft-deleted rows too.
type Product struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	ProductCode      string    `json:"product_code" gorm:"type:varchar(50);not null"`
	Price            float64   `json:"price" gorm:"not null"` // MRP
	AdoPrice         float64   `json:"adoPrice" gorm:"not null"`
	MdPrice          float64   `json:"mdPrice" gorm:"not null"`
	SdPrice          float64   `json:"sdPrice" gorm:"not null"`
	DistributorPrice float64   `json:"distributorPrice" gorm:"not null"`
	ProductVolume    string    `json:"productVolume" gorm:"type:varchar(50);not null"`
	Status           bool      `json:"status" gorm:"not null;default:true"` // customer visibility
	Image            string    `json:"image" gorm:"type:varchar(255)"`
	IsDeleted        bool      `json:"isDeleted" gorm:"not null;default:false"`
	CreatedBy        uint      `json:"createdBy" gorm:"index"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Sector is a named sales territory customers and distributors are grouped
// under.
type Sector struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderLimit is a single numeric configuration value, fully CRUD-managed.
type OrderLimit struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Hours     int       `json:"hours" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Distributor tiers a sales target may be keyed by.
var SalesTargetRoles = []string{
	"Area Development Officer (ADO)",
	"Master Distributor (MD)",
	"Super Distributor (SD)",
	"Distributor",
}

// SalesTarget holds per-product target quantities and durations for one
// distributor tier. ProductData is stored opaquely.
type SalesTarget struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Role        string          `json:"role" gorm:"type:varchar(64);uniqueIndex;not null"`
	ProductData json.RawMessage `json:"productData" gorm:"type:json;not null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TableName sets custom table name
func (SalesTarget) TableName() string { return "sales_target" }
