package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillResponse represents a bill in list responses
type BillResponse struct {
	ID                   uint            `json:"id" example:"1"`
	Name                 string          `json:"name" example:"Supermarket"`
	Description          *string         `json:"description,omitempty" example:"Weekly groceries"`
	ExecutionDate        time.Time       `json:"execution_date" example:"2024-03-15T00:00:00Z"`
	TotalAmount          decimal.Decimal `json:"total_amount" swaggertype:"string" example:"250.90"`
	NumberOfInstallments int             `json:"number_of_installments" example:"3"`
	Category             *string         `json:"category,omitempty" example:"Food"`
	HasCreditCard        bool            `json:"has_credit_card" example:"true"`
	CreatedAt            time.Time       `json:"created_at" example:"2024-03-15T10:00:00Z"`
}

// InstallmentResponse represents a single installment of a bill
type InstallmentResponse struct {
	ID                uint            `json:"id" example:"10"`
	InstallmentNumber int             `json:"installment_number" example:"1"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"string" example:"83.64"`
	DueDate           time.Time       `json:"due_date" example:"2024-04-15T00:00:00Z"`
	CreditCardID      *uint           `json:"credit_card_id,omitempty" example:"5"`
}

// BillDetailResponse represents a bill together with its installments
type BillDetailResponse struct {
	BillResponse
	Installments []InstallmentResponse `json:"installments"`
}
