package ordersink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/urbtech/urbtech-backend/internal/chatbot"
	"github.com/urbtech/urbtech-backend/internal/models"
)

// RemoteSink persists orders through the orders REST API of a separately
// deployed backend instance.
type RemoteSink struct {
	baseURL string
	client  *http.Client
}

// NewRemoteSink creates a sink that posts to the API at baseURL
func NewRemoteSink(baseURL string) *RemoteSink {
	return &RemoteSink{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RemoteSink) EnsureCustomer(ctx context.Context, name, customerType, location string) (*models.Customer, error) {
	payload := map[string]string{
		"name":     name,
		"type":     customerType,
		"location": location,
	}

	var customer models.Customer
	if err := r.post(ctx, "/api/customers", payload, &customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &customer, nil
}

func (r *RemoteSink) CreateOrder(ctx context.Context, draft *chatbot.OrderDraft, customerID uint) (*models.Order, error) {
	payload := models.Order{
		CustomerName: draft.CustomerName,
		CustomerID:   customerID,
		Type:         draft.CustomerType,
		WasteType:    draft.WasteType,
		Location:     draft.Location,
		Volume:       draft.Volume,
		Photos:       draft.Photos,
		Status:       draft.Status,
	}

	var order models.Order
	if err := r.post(ctx, "/api/orders", payload, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

func (r *RemoteSink) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
