package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbtech/urbtech-backend/internal/models"
	"github.com/urbtech/urbtech-backend/internal/storage"
)

// CustomerHandler handles customer-related requests
type CustomerHandler struct {
	store storage.Store
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(store storage.Store) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// CustomerRequest is the create-or-update payload
type CustomerRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// CreateCustomer creates a customer, or updates the existing one with the
// same case-insensitive (name, location) pair.
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and location are required",
		})
	}
	if req.Type != "" && !models.ValidType(req.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Type must be 'empresarial' or 'residencial'",
		})
	}

	customer, err := h.store.EnsureCustomer(req.Name, req.Type, req.Location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create customer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetCustomers retrieves all customers, newest first
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.store.GetAllCustomers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve customers",
		})
	}

	return c.JSON(customers)
}
