package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbtech/urbtech-backend/internal/models"
	"github.com/urbtech/urbtech-backend/internal/storage"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	store storage.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store storage.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// CreateOrder persists a completed order
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if order.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Customer name is required",
		})
	}

	created, err := h.store.CreateOrder(&order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetOrders retrieves all orders, newest first
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.store.GetAllOrders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve orders",
		})
	}

	return c.JSON(orders)
}

// OrderStatusRequest is the status update payload
type OrderStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order between operator statuses
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var req OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !models.ValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	order, err := h.store.UpdateOrderStatus(req.ID, req.Status)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.JSON(order)
}

// OrderDeleteRequest identifies the order to delete
type OrderDeleteRequest struct {
	ID uint `json:"id"`
}

// DeleteOrder removes an order
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	var req OrderDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.store.DeleteOrder(req.ID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
