package model

import (
	"time"

	"gorm.io/gorm"
)

// ContractTemplateModel mirrors the 'contract_templates' table. Rows are
// soft-deleted on deactivation so that documents generated from an old
// template remain reproducible.
type ContractTemplateModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Type      string `gorm:"type:varchar(40);not null;index"`
	Content   string `gorm:"type:text;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContractTemplateModel) TableName() string {
	return "contract_templates"
}
