package entity

import "time"

// Payment status values, user-facing vocabulary like contract statuses.
const (
	PaymentStatusPendente = "pendente"
	PaymentStatusPago     = "pago"
	PaymentStatusAtrasado = "atrasado"
)

// Payment is a single rent installment of a contract.
type Payment struct {
	ID         int64
	ContractID int64
	DueDate    string // Civil date "YYYY-MM-DD".
	Amount     float64
	Status     string
	PaidAt     string // Civil date, empty while unpaid.
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
