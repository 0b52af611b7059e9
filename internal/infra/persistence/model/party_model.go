// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"gorm.io/gorm"
)

// OwnerModel mirrors the 'owners' table.
type OwnerModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(255);not null"`
	Document      string `gorm:"type:varchar(20);not null;index"`
	RG            string `gorm:"column:rg;type:varchar(20)"`
	Phone         string `gorm:"type:varchar(30)"`
	Email         string `gorm:"type:varchar(255)"`
	Nationality   string `gorm:"type:varchar(60)"`
	Profession    string `gorm:"type:varchar(100)"`
	MaritalStatus string `gorm:"type:varchar(40)"`
	SpouseName    string `gorm:"type:varchar(255)"`
	// Address is stored as a JSON-encoded string and decoded on read.
	Address   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return "owners"
}

// TenantModel mirrors the 'tenants' table. The guarantor travels as a
// JSON-encoded sub-object in the same row.
type TenantModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(255);not null"`
	Document      string `gorm:"type:varchar(20);not null;index"`
	RG            string `gorm:"column:rg;type:varchar(20)"`
	Phone         string `gorm:"type:varchar(30)"`
	Email         string `gorm:"type:varchar(255)"`
	Nationality   string `gorm:"type:varchar(60)"`
	Profession    string `gorm:"type:varchar(100)"`
	MaritalStatus string `gorm:"type:varchar(40)"`
	SpouseName    string `gorm:"type:varchar(255)"`
	Address       string `gorm:"type:text"`
	Guarantor     string `gorm:"type:text"` // JSON-encoded Guarantor, empty when none.
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}
