package chatbot

import (
	"fmt"
	"time"

	"github.com/urbtech/urbtech-backend/internal/models"
)

// OrderDraft is the in-progress order record accumulated during one
// conversation. Fields are filled in step order and only overwritten by
// revisiting their step or by a reset.
type OrderDraft struct {
	CustomerName string    `json:"customer_name"`
	CustomerType string    `json:"type"` // empresarial | residencial
	WasteType    string    `json:"waste_type"`
	Location     string    `json:"location"`
	Volume       string    `json:"volume"`
	Photos       []string  `json:"photos"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewDraft returns an empty draft ready for a new conversation
func NewDraft() *OrderDraft {
	return &OrderDraft{
		Photos:    []string{},
		Status:    models.OrderStatusNew,
		CreatedAt: time.Now(),
	}
}

// Reset returns the draft to its initial empty state so the same session can
// start a new order.
func (d *OrderDraft) Reset() {
	*d = *NewDraft()
}

// Summary renders the order recap shown before confirmation
func (d *OrderDraft) Summary() string {
	return fmt.Sprintf(`Resumo do seu pedido:
- Nome: %s
- Tipo: %s
- Resíduo: %s
- Local: %s
- Volume: %s
- Fotos: %d anexadas`,
		d.CustomerName, d.CustomerType, d.WasteType, d.Location, d.Volume, len(d.Photos))
}
