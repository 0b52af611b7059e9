package model

import (
	"time"

	"gorm.io/gorm"
)

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ContractID int64  `gorm:"not null;index"`
	DueDate    string `gorm:"type:varchar(30);not null"`
	Amount     float64
	Status     string `gorm:"type:varchar(20);not null;index"`
	PaidAt     string `gorm:"type:varchar(30)"`
	Notes      string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
