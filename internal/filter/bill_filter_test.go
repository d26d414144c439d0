package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
func boolPtr(b bool) *bool    { return &b }

func TestFilters_AbsentInputIsNeutral(t *testing.T) {
	cases := map[string]Predicate{
		"name":         ByName(nil),
		"start":        ByStartDate(nil),
		"end":          ByEndDate(nil),
		"min":          ByMinAmount(nil),
		"max":          ByMaxAmount(nil),
		"installments": ByInstallmentCount(nil),
		"category":     ByCategory(AnyCategory()),
		"credit card":  ByCreditCard(nil),
		"has card":     ByHasCreditCard(nil),
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, True{}, p)
			assert.True(t, IsNeutral(p))
		})
	}
}

func TestByName(t *testing.T) {
	assert.Equal(t, ByName(nil), ByName(strPtr("")))
	assert.Equal(t, True{}, ByName(strPtr("   ")))
	assert.Equal(t, Contains{Field: FieldBillName, Value: "foo"}, ByName(strPtr("foo")))
}

func TestDateRange(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, Comparison{Field: FieldBillExecutionDate, Op: OpGreaterOrEqual, Value: ts}, ByStartDate(&ts))
	assert.Equal(t, Comparison{Field: FieldBillExecutionDate, Op: OpLessOrEqual, Value: ts}, ByEndDate(&ts))

	offset := time.Date(2024, 3, 15, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	assert.Equal(t, Comparison{Field: FieldBillExecutionDate, Op: OpGreaterOrEqual, Value: ts}, ByStartDate(&offset))
	assert.Equal(t, Comparison{Field: FieldBillExecutionDate, Op: OpLessOrEqual, Value: ts}, ByEndDate(&offset))
}

func TestAmountRange(t *testing.T) {
	min := decimal.RequireFromString("10.50")
	max := decimal.RequireFromString("99.99")

	assert.Equal(t, Comparison{Field: FieldBillTotalAmount, Op: OpGreaterOrEqual, Value: min}, ByMinAmount(&min))
	assert.Equal(t, Comparison{Field: FieldBillTotalAmount, Op: OpLessOrEqual, Value: max}, ByMaxAmount(&max))
}

func TestByInstallmentCount(t *testing.T) {
	assert.Equal(t, Comparison{Field: FieldBillNumberOfInstallments, Op: OpEqual, Value: 3}, ByInstallmentCount(intPtr(3)))
}

func TestByCategory(t *testing.T) {
	t.Run("zero value is any", func(t *testing.T) {
		var f CategoryFilter
		assert.True(t, f.IsAny())
		assert.Equal(t, True{}, ByCategory(f))
	})

	t.Run("blank name is neutral", func(t *testing.T) {
		assert.Equal(t, True{}, ByCategory(CategoryNamed(" ")))
	})

	t.Run("uncategorized", func(t *testing.T) {
		p := ByCategory(Uncategorized())
		or, ok := p.(Or)
		require.True(t, ok)
		assert.ElementsMatch(t, []Predicate{
			IsNull{Field: FieldBillCategory},
			Comparison{Field: FieldBillCategory, Op: OpEqual, Value: ""},
		}, or.Terms)
	})

	t.Run("named", func(t *testing.T) {
		assert.Equal(t, EqualFold{Field: FieldBillCategory, Value: "Food"}, ByCategory(CategoryNamed("Food")))
	})
}

func TestByCreditCard(t *testing.T) {
	p := ByCreditCard(uintPtr(5))
	assert.Equal(t, Exists{
		Relation: RelationInstallments,
		Where:    Comparison{Field: FieldInstallmentCreditCardID, Op: OpEqual, Value: uint(5)},
	}, p)
}

func TestByHasCreditCard(t *testing.T) {
	with := ByHasCreditCard(boolPtr(true))
	without := ByHasCreditCard(boolPtr(false))

	exists, ok := with.(Exists)
	require.True(t, ok)
	assert.Equal(t, RelationInstallments, exists.Relation)
	assert.Equal(t, Not{Term: IsNull{Field: FieldInstallmentCreditCardID}}, exists.Where)

	assert.Equal(t, Not{Term: with}, without)
}

func TestBillCriteria_EmptyIsNoFilter(t *testing.T) {
	assert.Equal(t, True{}, BillCriteria{}.Predicate())
}

func TestBillCriteria_SingleFilterIsNotWrapped(t *testing.T) {
	p := BillCriteria{Name: strPtr("rent")}.Predicate()
	assert.Equal(t, Contains{Field: FieldBillName, Value: "rent"}, p)
}

func TestBillCriteria_CombinesSuppliedFilters(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	criteria := BillCriteria{
		Name:             strPtr("market"),
		StartDate:        &start,
		InstallmentCount: intPtr(2),
		Category:         CategoryNamed("food"),
		HasCreditCard:    boolPtr(true),
	}

	and, ok := criteria.Predicate().(And)
	require.True(t, ok)
	assert.Len(t, and.Terms, 5)
	assert.Equal(t, ByName(criteria.Name), and.Terms[0])
	assert.Equal(t, ByHasCreditCard(criteria.HasCreditCard), and.Terms[4])
}
