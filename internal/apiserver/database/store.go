package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store implements the Database interface over a gorm connection. The
// dialector decides the backend; the queries are identical across drivers.
type Store struct {
	db *gorm.DB
}

// newStore opens the connection and migrates the schema. TranslateError is
// enabled so unique-index violations surface as ErrDuplicate on every driver.
func newStore(dialector gorm.Dialector) (*Store, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&Role{},
		&User{},
		&Order{},
		&Feedback{},
		&Product{},
		&Sector{},
		&OrderLimit{},
		&SalesTarget{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: gormDB}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateRole(ctx context.Context, role *Role) error {
	return s.db.WithContext(ctx).Create(role).Error
}

func (s *Store) GetRoleByID(ctx context.Context, id uint) (*Role, error) {
	var role Role
	if err := s.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Store) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	if err := s.db.WithContext(ctx).Where("role_name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Store) CreateUser(ctx context.Context, user *User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).
		Preload("Role").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := s.db.WithContext(ctx).
		Preload("Role").
		Order("id asc").
		Find(&users).Error
	return users, err
}

func (s *Store) CreateOrder(ctx context.Context, order *Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *Store) GetOrderByID(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	res := s.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) FindEligibleOrder(ctx context.Context, orderID, userID uint, statuses []string) (*Order, error) {
	var order Order
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status IN ?", orderID, userID, statuses).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) CreateFeedback(ctx context.Context, feedback *Feedback) error {
	return s.db.WithContext(ctx).Create(feedback).Error
}

func (s *Store) GetFeedbackByUserAndOrder(ctx context.Context, userID, orderID uint) (*Feedback, error) {
	var feedback Feedback
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (s *Store) ListFeedbackByHigherRole(ctx context.Context, higherRoleID uint) ([]*Feedback, error) {
	var items []*Feedback
	err := s.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = feedback.order_id").
		Where("orders.higher_role_id = ?", higherRoleID).
		Preload("User").
		Find(&items).Error
	return items, err
}

func (s *Store) ListFeedbackByCustomer(ctx context.Context, userID uint) ([]*Feedback, error) {
	var items []*Feedback
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		Preload("Order").
		Find(&items).Error
	return items, err
}

func (s *Store) CreateProduct(ctx context.Context, product *Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *Store) GetProductByID(ctx context.Context, id uint, visibleOnly bool) (*Product, error) {
	q := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false)
	if visibleOnly {
		q = q.Where("status = ?", true)
	}
	var product Product
	if err := q.First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) GetProductByName(ctx context.Context, name string) (*Product, error) {
	// Soft-deleted rows count too: a retired name stays reserved.
	var product Product
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) ListProducts(ctx context.Context, visibleOnly bool) ([]*Product, error) {
	q := s.db.WithContext(ctx).Where("is_deleted = ?", false)
	if visibleOnly {
		q = q.Where("status = ?", true)
	}
	var products []*Product
	err := q.Order("id asc").Find(&products).Error
	return products, err
}

func (s *Store) UpdateProduct(ctx context.Context, product *Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

func (s *Store) SoftDeleteProduct(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CreateSector(ctx context.Context, sector *Sector) error {
	return s.db.WithContext(ctx).Create(sector).Error
}

func (s *Store) ListSectors(ctx context.Context) ([]*Sector, error) {
	var sectors []*Sector
	err := s.db.WithContext(ctx).Order("id asc").Find(&sectors).Error
	return sectors, err
}

func (s *Store) GetSectorByID(ctx context.Context, id uint) (*Sector, error) {
	var sector Sector
	if err := s.db.WithContext(ctx).First(&sector, id).Error; err != nil {
		return nil, err
	}
	return &sector, nil
}

func (s *Store) UpdateSector(ctx context.Context, sector *Sector) error {
	return s.db.WithContext(ctx).Save(sector).Error
}

func (s *Store) DeleteSector(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Sector{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CreateOrderLimit(ctx context.Context, limit *OrderLimit) error {
	return s.db.WithContext(ctx).Create(limit).Error
}

func (s *Store) ListOrderLimits(ctx context.Context) ([]*OrderLimit, error) {
	var limits []*OrderLimit
	err := s.db.WithContext(ctx).Order("id asc").Find(&limits).Error
	return limits, err
}

func (s *Store) GetOrderLimitByID(ctx context.Context, id uint) (*OrderLimit, error) {
	var limit OrderLimit
	if err := s.db.WithContext(ctx).First(&limit, id).Error; err != nil {
		return nil, err
	}
	return &limit, nil
}

func (s *Store) UpdateOrderLimit(ctx context.Context, limit *OrderLimit) error {
	return s.db.WithContext(ctx).Save(limit).Error
}

func (s *Store) DeleteOrderLimit(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&OrderLimit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CreateSalesTarget(ctx context.Context, target *SalesTarget) error {
	return s.db.WithContext(ctx).Create(target).Error
}

func (s *Store) ListSalesTargets(ctx context.Context) ([]*SalesTarget, error) {
	var targets []*SalesTarget
	err := s.db.WithContext(ctx).Order("id asc").Find(&targets).Error
	return targets, err
}

func (s *Store) GetSalesTargetByRole(ctx context.Context, role string) (*SalesTarget, error) {
	var target SalesTarget
	if err := s.db.WithContext(ctx).Where("role = ?", role).First(&target).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

func (s *Store) UpdateSalesTarget(ctx context.Context, target *SalesTarget) error {
	return s.db.WithContext(ctx).Save(target).Error
}

func (s *Store) DeleteSalesTargetByRole(ctx context.Context, role string) error {
	res := s.db.WithContext(ctx).Where("role = ?", role).Delete(&SalesTarget{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
