package storage

import (
	"github.com/urbtech/urbtech-backend/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Customer operations
	EnsureCustomer(name, customerType, location string) (*models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	GetCustomerByNameLocation(name, location string) (*models.Customer, error)
	GetAllCustomers() ([]*models.Customer, error)

	// Order operations
	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetAllOrders() ([]*models.Order, error)
	UpdateOrderStatus(id uint, status string) (*models.Order, error)
	DeleteOrder(id uint) error
}
