package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment represents the installments table
type Installment struct {
	ID                uint            `json:"id" gorm:"primarykey"`
	BillID            uint            `json:"bill_id" gorm:"column:bill_id;not null;index"`
	CreditCardID      *uint           `json:"credit_card_id" gorm:"column:credit_card_id;index"`
	InstallmentNumber int             `json:"installment_number" gorm:"column:installment_number;not null"`
	Amount            decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(15,2);not null"`
	DueDate           time.Time       `json:"due_date" gorm:"column:due_date;not null"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Installment
func (Installment) TableName() string {
	return "installments"
}
