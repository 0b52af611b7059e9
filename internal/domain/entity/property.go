package entity

import "time"

// Property is a rentable unit. Every property belongs to exactly one owner.
type Property struct {
	ID          int64
	OwnerID     int64
	Name        string // Display name, e.g. "Apto 302 - Ed. Aurora".
	Type        string // e.g. "apartamento", "casa", "sala comercial".
	Description string
	Address     *Address
	RentValue   float64
	Bedrooms    *int // Optional room counts; nil when not informed.
	Bathrooms   *int
	Area        *float64 // Square meters, optional.

	// Utility accounts, optional. Used on contracts and payment slips.
	WaterCompany             string
	WaterAccountNumber       string
	ElectricityCompany       string
	ElectricityAccountNumber string

	CreatedAt time.Time
	UpdatedAt time.Time
}
