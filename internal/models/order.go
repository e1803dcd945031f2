package models

import "gorm.io/gorm"

// Order status values, in operator workflow order
const (
	OrderStatusNew        = "novo"
	OrderStatusInProgress = "em andamento"
	OrderStatusDone       = "concluído"
)

// Order is the persisted result of a completed conversation. Immutable except
// for Status, which operators move between novo, em andamento and concluído.
type Order struct {
	gorm.Model
	CustomerName string   `json:"customer_name" gorm:"not null"`
	CustomerID   uint     `json:"customer_id" gorm:"index"`
	Type         string   `json:"type"`
	WasteType    string   `json:"waste_type"`
	Location     string   `json:"location"`
	Volume       string   `json:"volume"`
	Photos       []string `json:"photos" gorm:"serializer:json;type:text"`
	Status       string   `json:"status" gorm:"default:novo"`
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDone:
		return true
	}
	return false
}
