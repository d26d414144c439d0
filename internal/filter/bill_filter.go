package filter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ByName matches bills whose name contains value, ignoring case.
// A nil or blank value is neutral.
func ByName(value *string) Predicate {
	if value == nil || strings.TrimSpace(*value) == "" {
		return True{}
	}
	return Contains{Field: FieldBillName, Value: *value}
}

// ByStartDate matches bills executed at or after start. Bounds are compared in UTC.
func ByStartDate(start *time.Time) Predicate {
	if start == nil {
		return True{}
	}
	return Comparison{Field: FieldBillExecutionDate, Op: OpGreaterOrEqual, Value: start.UTC()}
}

// ByEndDate matches bills executed at or before end
func ByEndDate(end *time.Time) Predicate {
	if end == nil {
		return True{}
	}
	return Comparison{Field: FieldBillExecutionDate, Op: OpLessOrEqual, Value: end.UTC()}
}

// ByMinAmount matches bills whose total amount is at least min
func ByMinAmount(min *decimal.Decimal) Predicate {
	if min == nil {
		return True{}
	}
	return Comparison{Field: FieldBillTotalAmount, Op: OpGreaterOrEqual, Value: *min}
}

// ByMaxAmount matches bills whose total amount is at most max
func ByMaxAmount(max *decimal.Decimal) Predicate {
	if max == nil {
		return True{}
	}
	return Comparison{Field: FieldBillTotalAmount, Op: OpLessOrEqual, Value: *max}
}

// ByInstallmentCount matches bills with exactly count installments
func ByInstallmentCount(count *int) Predicate {
	if count == nil {
		return True{}
	}
	return Comparison{Field: FieldBillNumberOfInstallments, Op: OpEqual, Value: *count}
}

// ByCategory matches bills according to the category filter mode
func ByCategory(category CategoryFilter) Predicate {
	switch category.mode {
	case categoryNone:
		return AnyOf(
			IsNull{Field: FieldBillCategory},
			Comparison{Field: FieldBillCategory, Op: OpEqual, Value: ""},
		)
	case categoryNamed:
		if strings.TrimSpace(category.name) == "" {
			return True{}
		}
		return EqualFold{Field: FieldBillCategory, Value: category.name}
	default:
		return True{}
	}
}

// ByCreditCard matches bills with at least one installment charged to the card
func ByCreditCard(creditCardID *uint) Predicate {
	if creditCardID == nil {
		return True{}
	}
	return Exists{
		Relation: RelationInstallments,
		Where:    Comparison{Field: FieldInstallmentCreditCardID, Op: OpEqual, Value: *creditCardID},
	}
}

// ByHasCreditCard matches bills that have (true) or lack (false) any
// installment charged to a credit card
func ByHasCreditCard(hasCreditCard *bool) Predicate {
	if hasCreditCard == nil {
		return True{}
	}

	withCard := Exists{
		Relation: RelationInstallments,
		Where:    Not{Term: IsNull{Field: FieldInstallmentCreditCardID}},
	}
	if *hasCreditCard {
		return withCard
	}
	return Not{Term: withCard}
}

// BillCriteria holds every optional bill search parameter.
// The zero value matches all bills.
type BillCriteria struct {
	Name             *string
	StartDate        *time.Time
	EndDate          *time.Time
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	InstallmentCount *int
	Category         CategoryFilter
	CreditCardID     *uint
	HasCreditCard    *bool
}

// Predicate returns the conjunction of all supplied filters
func (c BillCriteria) Predicate() Predicate {
	return AllOf(
		ByName(c.Name),
		ByStartDate(c.StartDate),
		ByEndDate(c.EndDate),
		ByMinAmount(c.MinAmount),
		ByMaxAmount(c.MaxAmount),
		ByInstallmentCount(c.InstallmentCount),
		ByCategory(c.Category),
		ByCreditCard(c.CreditCardID),
		ByHasCreditCard(c.HasCreditCard),
	)
}
