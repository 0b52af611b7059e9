package model

import (
	"time"

	"gorm.io/gorm"
)

// PropertyModel mirrors the 'properties' table.
type PropertyModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(255);not null"`
	Type        string `gorm:"type:varchar(40)"`
	Description string `gorm:"type:text"`
	// Address is stored as a JSON-encoded string and decoded on read.
	Address                  string `gorm:"type:text"`
	RentValue                float64
	Bedrooms                 *int
	Bathrooms                *int
	Area                     *float64
	WaterCompany             string `gorm:"type:varchar(120)"`
	WaterAccountNumber       string `gorm:"type:varchar(60)"`
	ElectricityCompany       string `gorm:"type:varchar(120)"`
	ElectricityAccountNumber string `gorm:"type:varchar(60)"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
