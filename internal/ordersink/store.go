package ordersink

import (
	"context"

	"github.com/urbtech/urbtech-backend/internal/chatbot"
	"github.com/urbtech/urbtech-backend/internal/models"
	"github.com/urbtech/urbtech-backend/internal/storage"
)

// StoreSink persists orders directly through a storage.Store. It is the
// primary sink when the bot shares a database with the orders API, and the
// secondary sink when wrapped around the local SQLite store.
type StoreSink struct {
	store storage.Store
}

// NewStoreSink creates a sink on top of a store
func NewStoreSink(store storage.Store) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) EnsureCustomer(_ context.Context, name, customerType, location string) (*models.Customer, error) {
	return s.store.EnsureCustomer(name, customerType, location)
}

func (s *StoreSink) CreateOrder(_ context.Context, draft *chatbot.OrderDraft, customerID uint) (*models.Order, error) {
	order := &models.Order{
		CustomerName: draft.CustomerName,
		CustomerID:   customerID,
		Type:         draft.CustomerType,
		WasteType:    draft.WasteType,
		Location:     draft.Location,
		Volume:       draft.Volume,
		Photos:       append([]string{}, draft.Photos...),
		Status:       draft.Status,
	}
	return s.store.CreateOrder(order)
}
