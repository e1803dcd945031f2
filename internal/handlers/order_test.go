package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/urbtech/urbtech-backend/internal/models"
	"github.com/urbtech/urbtech-backend/internal/storage"
)

func setupAPIApp(store storage.Store) *fiber.App {
	orderHandler := NewOrderHandler(store)
	customerHandler := NewCustomerHandler(store)

	app := fiber.New()
	app.Post("/api/orders", orderHandler.CreateOrder)
	app.Get("/api/orders", orderHandler.GetOrders)
	app.Put("/api/orders", orderHandler.UpdateOrderStatus)
	app.Delete("/api/orders", orderHandler.DeleteOrder)
	app.Post("/api/customers", customerHandler.CreateCustomer)
	app.Get("/api/customers", customerHandler.GetCustomers)
	return app
}

func request(t *testing.T, app *fiber.App, method, path string, payload interface{}) (*http.Response, []byte) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	return resp, buf.Bytes()
}

func TestCreateOrderEndpoint(t *testing.T) {
	app := setupAPIApp(storage.NewMemoryStore())

	resp, body := request(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name": "Maria Silva",
		"customer_id":   1,
		"type":          "residencial",
		"waste_type":    "baterias",
		"location":      "Rua A, 10",
		"volume":        "10kg",
		"photos":        []string{"https://example.test/p.jpg"},
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var order models.Order
	assert.NoError(t, json.Unmarshal(body, &order))
	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, "baterias", order.WasteType)
}

func TestCreateOrderRequiresCustomerName(t *testing.T) {
	app := setupAPIApp(storage.NewMemoryStore())

	resp, _ := request(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"waste_type": "baterias",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := setupAPIApp(store)

	created, err := store.CreateOrder(&models.Order{CustomerName: "Maria Silva"})
	assert.NoError(t, err)

	resp, body := request(t, app, http.MethodPut, "/api/orders", map[string]interface{}{
		"id":     created.ID,
		"status": models.OrderStatusInProgress,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var order models.Order
	assert.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, models.OrderStatusInProgress, order.Status)

	// Unknown status is rejected
	resp, _ = request(t, app, http.MethodPut, "/api/orders", map[string]interface{}{
		"id":     created.ID,
		"status": "cancelado",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := setupAPIApp(store)

	created, err := store.CreateOrder(&models.Order{CustomerName: "Maria Silva"})
	assert.NoError(t, err)

	resp, body := request(t, app, http.MethodDelete, "/api/orders", map[string]interface{}{
		"id": created.ID,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result map[string]bool
	assert.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result["success"])

	resp, _ = request(t, app, http.MethodDelete, "/api/orders", map[string]interface{}{
		"id": created.ID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetOrdersNewestFirst(t *testing.T) {
	store := storage.NewMemoryStore()
	app := setupAPIApp(store)

	_, err := store.CreateOrder(&models.Order{CustomerName: "Primeiro"})
	assert.NoError(t, err)
	_, err = store.CreateOrder(&models.Order{CustomerName: "Segundo"})
	assert.NoError(t, err)

	resp, body := request(t, app, http.MethodGet, "/api/orders", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	assert.NoError(t, json.Unmarshal(body, &orders))
	assert.Len(t, orders, 2)
	assert.Equal(t, "Segundo", orders[0].CustomerName)
}

func TestCreateCustomerEndpoint(t *testing.T) {
	app := setupAPIApp(storage.NewMemoryStore())

	resp, body := request(t, app, http.MethodPost, "/api/customers", map[string]string{
		"name":     "Maria Silva",
		"type":     "residencial",
		"location": "Rua A, 10",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer models.Customer
	assert.NoError(t, json.Unmarshal(body, &customer))
	assert.NotZero(t, customer.ID)

	// Repeat contact dedups onto the same record with the new type
	resp, body = request(t, app, http.MethodPost, "/api/customers", map[string]string{
		"name":     "maria silva",
		"type":     "empresarial",
		"location": "rua a, 10",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var repeat models.Customer
	assert.NoError(t, json.Unmarshal(body, &repeat))
	assert.Equal(t, customer.ID, repeat.ID)
	assert.Equal(t, models.CustomerTypeBusiness, repeat.Type)
}

func TestCreateCustomerValidation(t *testing.T) {
	app := setupAPIApp(storage.NewMemoryStore())

	resp, _ := request(t, app, http.MethodPost, "/api/customers", map[string]string{
		"name": "Maria Silva",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = request(t, app, http.MethodPost, "/api/customers", map[string]string{
		"name":     "Maria Silva",
		"type":     "comercial",
		"location": "Rua A, 10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
