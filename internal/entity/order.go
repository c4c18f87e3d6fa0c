package entity

import (
	"github.com/google/uuid"
)

// Order is the single entity of record: one cash-on-delivery purchase of the
// PetBrush. The ID is assigned by the store at creation time and never reused.
type Order struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"       validate:"required,min=2"`
	Phone      string    `json:"phone"      validate:"required,min=9"`
	Address    string    `json:"address"    validate:"required,min=10"`
	PostalCode string    `json:"postalCode" validate:"required,postal_code"`
	Quantity   int       `json:"quantity"   validate:"required,gte=1,lte=10"`
}
