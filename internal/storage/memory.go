package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/urbtech/urbtech-backend/internal/models"
)

// MemoryStore holds all data in memory for testing and local development
type MemoryStore struct {
	customers map[uint]*models.Customer
	orders    map[uint]*models.Order

	// Mutexes for thread safety
	customerMu sync.RWMutex
	orderMu    sync.RWMutex

	// Counters for ID generation
	customerCounter uint
	orderCounter    uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[uint]*models.Customer),
		orders:    make(map[uint]*models.Order),
	}
}

// Customer operations

// EnsureCustomer creates a customer, or updates the type of the existing one
// with the same case-insensitive (name, location) pair.
func (m *MemoryStore) EnsureCustomer(name, customerType, location string) (*models.Customer, error) {
	m.customerMu.Lock()
	defer m.customerMu.Unlock()

	for _, c := range m.customers {
		if strings.EqualFold(c.Name, name) && strings.EqualFold(c.Location, location) {
			c.Type = customerType
			c.UpdatedAt = time.Now()
			return c, nil
		}
	}

	m.customerCounter++
	now := time.Now()
	customer := &models.Customer{
		Name:     name,
		Type:     customerType,
		Location: location,
	}
	customer.ID = m.customerCounter
	customer.CreatedAt = now
	customer.UpdatedAt = now

	m.customers[customer.ID] = customer
	return customer, nil
}

func (m *MemoryStore) GetCustomer(id uint) (*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	customer, exists := m.customers[id]
	if !exists {
		return nil, fmt.Errorf("customer not found")
	}
	return customer, nil
}

func (m *MemoryStore) GetCustomerByNameLocation(name, location string) (*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	for _, c := range m.customers {
		if strings.EqualFold(c.Name, name) && strings.EqualFold(c.Location, location) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("customer not found")
}

func (m *MemoryStore) GetAllCustomers() ([]*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	customers := make([]*models.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		customers = append(customers, c)
	}
	// Newest first
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}

// Order operations

func (m *MemoryStore) CreateOrder(order *models.Order) (*models.Order, error) {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	m.orderCounter++
	order.ID = m.orderCounter
	if order.Status == "" {
		order.Status = models.OrderStatusNew
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	m.orders[order.ID] = order
	return order, nil
}

func (m *MemoryStore) GetOrder(id uint) (*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	order, exists := m.orders[id]
	if !exists {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

func (m *MemoryStore) GetAllOrders() ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	orders := make([]*models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	// Newest first
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (m *MemoryStore) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	order, exists := m.orders[id]
	if !exists {
		return nil, fmt.Errorf("order not found")
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	return order, nil
}

func (m *MemoryStore) DeleteOrder(id uint) error {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	if _, exists := m.orders[id]; !exists {
		return fmt.Errorf("order not found")
	}
	delete(m.orders, id)
	return nil
}
