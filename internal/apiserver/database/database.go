package database

import (
	"context"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by implementations. Handlers translate these into
// the client-facing error taxonomy.
var (
	ErrNotFound  = gorm.ErrRecordNotFound
	ErrDuplicate = gorm.ErrDuplicatedKey
)

// Database defines the persistence gateway consumed by the handlers.
type Database interface {
	// Close closes the database connection.
	Close() error

	// CreateRole creates a new role.
	CreateRole(ctx context.Context, role *Role) error

	// GetRoleByID gets a role by its id.
	GetRoleByID(ctx context.Context, id uint) (*Role, error)

	// GetRoleByName gets a role by its name.
	GetRoleByName(ctx context.Context, name string) (*Role, error)

	// CreateUser creates a new user.
	CreateUser(ctx context.Context, user *User) error

	// GetUserByUsername gets a user with its role preloaded.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// GetUserByID gets a user by id.
	GetUserByID(ctx context.Context, id uint) (*User, error)

	// ListUsers lists all users with roles preloaded.
	ListUsers(ctx context.Context) ([]*User, error)

	// CreateOrder creates a new order.
	CreateOrder(ctx context.Context, order *Order) error

	// GetOrderByID gets an order by id.
	GetOrderByID(ctx context.Context, id uint) (*Order, error)

	// UpdateOrderStatus updates the status of an order.
	UpdateOrderStatus(ctx context.Context, id uint, status string) error

	// FindEligibleOrder finds an order owned by the user whose status is one
	// of the given values.
	FindEligibleOrder(ctx context.Context, orderID, userID uint, statuses []string) (*Order, error)

	// CreateFeedback creates a feedback record.
	CreateFeedback(ctx context.Context, feedback *Feedback) error

	// GetFeedbackByUserAndOrder gets the feedback for a (user, order) pair.
	GetFeedbackByUserAndOrder(ctx context.Context, userID, orderID uint) (*Feedback, error)

	// ListFeedbackByHigherRole lists feedback whose order carries the given
	// approval-hierarchy reference, with users preloaded.
	ListFeedbackByHigherRole(ctx context.Context, higherRoleID uint) ([]*Feedback, error)

	// ListFeedbackByCustomer lists feedback for a user with orders and users
	// preloaded.
	ListFeedbackByCustomer(ctx context.Context, userID uint) ([]*Feedback, error)

	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, product *Product) error

	// GetProductByID gets a non-deleted product; visibleOnly additionally
	// requires the customer-visibility flag.
	GetProductByID(ctx context.Context, id uint, visibleOnly bool) (*Product, error)

	// GetProductByName gets a product by name regardless of soft-delete state.
	GetProductByName(ctx context.Context, name string) (*Product, error)

	// ListProducts lists non-deleted products; visibleOnly additionally
	// requires the customer-visibility flag.
	ListProducts(ctx context.Context, visibleOnly bool) ([]*Product, error)

	// UpdateProduct persists changes to a product.
	UpdateProduct(ctx context.Context, product *Product) error

	// SoftDeleteProduct marks a product deleted. Returns ErrNotFound when no
	// live product has the id.
	SoftDeleteProduct(ctx context.Context, id uint) error

	// CreateSector creates a sector.
	CreateSector(ctx context.Context, sector *Sector) error

	// ListSectors lists all sectors.
	ListSectors(ctx context.Context) ([]*Sector, error)

	// GetSectorByID gets a sector by id.
	GetSectorByID(ctx context.Context, id uint) (*Sector, error)

	// UpdateSector persists changes to a sector.
	UpdateSector(ctx context.Context, sector *Sector) error

	// DeleteSector removes a sector. Returns ErrNotFound when the id does
	// not exist.
	DeleteSector(ctx context.Context, id uint) error

	// CreateOrderLimit creates an order limit.
	CreateOrderLimit(ctx context.Context, limit *OrderLimit) error

	// ListOrderLimits lists all order limits.
	ListOrderLimits(ctx context.Context) ([]*OrderLimit, error)

	// GetOrderLimitByID gets an order limit by id.
	GetOrderLimitByID(ctx context.Context, id uint) (*OrderLimit, error)

	// UpdateOrderLimit persists changes to an order limit.
	UpdateOrderLimit(ctx context.Context, limit *OrderLimit) error

	// DeleteOrderLimit removes an order limit. Returns ErrNotFound when the
	// id does not exist.
	DeleteOrderLimit(ctx context.Context, id uint) error

	// CreateSalesTarget creates a sales target.
	CreateSalesTarget(ctx context.Context, target *SalesTarget) error

	// ListSalesTargets lists all sales targets.
	ListSalesTargets(ctx context.Context) ([]*SalesTarget, error)

	// GetSalesTargetByRole gets the sales target for a distributor tier.
	GetSalesTargetByRole(ctx context.Context, role string) (*SalesTarget, error)

	// UpdateSalesTarget persists changes to a sales target.
	UpdateSalesTarget(ctx context.Context, target *SalesTarget) error

	// DeleteSalesTargetByRole removes the sales target for a tier. Returns
	// ErrNotFound when none exists.
	DeleteSalesTargetByRole(ctx context.Context, role string) error
}
