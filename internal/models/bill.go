package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents the bills table
type Bill struct {
	ID                   uint            `json:"id" gorm:"primarykey"`
	Name                 string          `json:"name" gorm:"column:name;not null"`
	Description          *string         `json:"description" gorm:"column:description"`
	ExecutionDate        time.Time       `json:"execution_date" gorm:"column:execution_date;not null;index"`
	TotalAmount          decimal.Decimal `json:"total_amount" gorm:"column:total_amount;type:numeric(15,2);not null"`
	NumberOfInstallments int             `json:"number_of_installments" gorm:"column:number_of_installments;not null"`
	Category             *string         `json:"category" gorm:"column:category;index"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	Installments         []Installment   `json:"installments,omitempty" gorm:"foreignKey:BillID"`
}

// TableName sets the insert table name for Bill
func (Bill) TableName() string {
	return "bills"
}
