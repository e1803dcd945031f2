package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/urbtech/urbtech-backend/internal/models"
)

// DatabaseStore implements Store backed by a gorm database
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store on top of an existing gorm connection
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// NewLocalStore opens a SQLite database at path and migrates it. Used as the
// local fallback when the primary order sink is unreachable.
func NewLocalStore(path string) (*DatabaseStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Order{}); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}
	return &DatabaseStore{db: db}, nil
}

// Customer operations

func (d *DatabaseStore) EnsureCustomer(name, customerType, location string) (*models.Customer, error) {
	var customer models.Customer
	err := d.db.Where("LOWER(name) = LOWER(?) AND LOWER(location) = LOWER(?)", name, location).
		First(&customer).Error
	if err == nil {
		// Repeat contact: refresh the type on the existing record
		customer.Type = customerType
		if err := d.db.Save(&customer).Error; err != nil {
			return nil, fmt.Errorf("update customer: %w", err)
		}
		return &customer, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("lookup customer: %w", err)
	}

	customer = models.Customer{
		Name:     name,
		Type:     customerType,
		Location: location,
	}
	if err := d.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &customer, nil
}

func (d *DatabaseStore) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := d.db.First(&customer, id).Error; err != nil {
		return nil, fmt.Errorf("customer not found")
	}
	return &customer, nil
}

func (d *DatabaseStore) GetCustomerByNameLocation(name, location string) (*models.Customer, error) {
	var customer models.Customer
	err := d.db.Where("LOWER(name) = LOWER(?) AND LOWER(location) = LOWER(?)", name, location).
		First(&customer).Error
	if err != nil {
		return nil, fmt.Errorf("customer not found")
	}
	return &customer, nil
}

func (d *DatabaseStore) GetAllCustomers() ([]*models.Customer, error) {
	var customers []*models.Customer
	if err := d.db.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Order operations

func (d *DatabaseStore) CreateOrder(order *models.Order) (*models.Order, error) {
	if order.Status == "" {
		order.Status = models.OrderStatusNew
	}
	if err := d.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (d *DatabaseStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := d.db.First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("order not found")
	}
	return &order, nil
}

func (d *DatabaseStore) GetAllOrders() ([]*models.Order, error) {
	var orders []*models.Order
	if err := d.db.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (d *DatabaseStore) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	var order models.Order
	if err := d.db.First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("order not found")
	}

	order.Status = status
	if err := d.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &order, nil
}

func (d *DatabaseStore) DeleteOrder(id uint) error {
	result := d.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order not found")
	}
	return nil
}
