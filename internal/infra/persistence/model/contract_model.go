package model

import (
	"time"

	"gorm.io/gorm"
)

// ContractModel mirrors the 'contracts' table. Date columns keep the legacy
// string representation (YYYY-MM-DD, occasionally a full timestamp) so that
// rendering applies its own calendar interpretation.
type ContractModel struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID            int64  `gorm:"not null;index"`
	TenantID           int64  `gorm:"not null;index"`
	PropertyID         int64  `gorm:"not null;index"`
	Type               string `gorm:"type:varchar(40)"`
	StartDate          string `gorm:"type:varchar(30)"`
	EndDate            string `gorm:"type:varchar(30)"`
	DurationMonths     int
	RentValue          float64
	DepositValue       *float64
	FirstPaymentDate   string `gorm:"type:varchar(30)"`
	PaymentDay         *int
	Status             string `gorm:"type:varchar(20);not null;index"`
	Observations       string `gorm:"type:text"`
	IsRenewal          bool   `gorm:"not null;default:false"`
	OriginalContractID *int64 `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContractModel) TableName() string {
	return "contracts"
}
