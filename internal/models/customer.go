package models

import "gorm.io/gorm"

// Customer types as stored in the database
const (
	CustomerTypeBusiness    = "empresarial"
	CustomerTypeResidential = "residencial"
)

// Customer is a deduplicated identity record. At most one customer exists per
// case-insensitive (name, location) pair; a repeat contact updates Type and
// UpdatedAt on the existing record.
type Customer struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null;index"`
	Type     string `json:"type"`
	Location string `json:"location" gorm:"index"`
}

// ValidType reports whether t is one of the known customer types.
func ValidType(t string) bool {
	return t == CustomerTypeBusiness || t == CustomerTypeResidential
}
