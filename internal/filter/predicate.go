// Package filter builds storage-independent predicates over bills.
//
// A Predicate is a small tree of tagged variants. The repository layer
// interprets the tree for its datastore; nothing here touches SQL.
package filter

// Field names a filterable attribute of a bill or of its installments
type Field string

const (
	FieldBillName                 Field = "bill.name"
	FieldBillExecutionDate        Field = "bill.execution_date"
	FieldBillTotalAmount          Field = "bill.total_amount"
	FieldBillNumberOfInstallments Field = "bill.number_of_installments"
	FieldBillCategory             Field = "bill.category"
	FieldInstallmentCreditCardID  Field = "installment.credit_card_id"
)

// Operator is a comparison operator
type Operator string

const (
	OpEqual          Operator = "="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// Relation names a 1:N relation of a bill usable in an existence check
type Relation string

const (
	// RelationInstallments correlates installments.bill_id with the bill id
	RelationInstallments Relation = "installments"
)

// Predicate is a composable boolean condition
type Predicate interface {
	predicate()
}

// True matches every row. It is the identity element of And.
type True struct{}

// Comparison compares a field against a value
type Comparison struct {
	Field Field
	Op    Operator
	Value interface{}
}

// Contains is a case-insensitive substring match
type Contains struct {
	Field Field
	Value string
}

// EqualFold matches a non-null field case-insensitively equal to Value
type EqualFold struct {
	Field Field
	Value string
}

// IsNull matches rows where the field is null
type IsNull struct {
	Field Field
}

// And matches when every term matches
type And struct {
	Terms []Predicate
}

// Or matches when at least one term matches
type Or struct {
	Terms []Predicate
}

// Not negates its term
type Not struct {
	Term Predicate
}

// Exists matches when at least one related row satisfies Where
type Exists struct {
	Relation Relation
	Where    Predicate
}

func (True) predicate()       {}
func (Comparison) predicate() {}
func (Contains) predicate()   {}
func (EqualFold) predicate()  {}
func (IsNull) predicate()     {}
func (And) predicate()        {}
func (Or) predicate()         {}
func (Not) predicate()        {}
func (Exists) predicate()     {}

// IsNeutral reports whether p matches every row without looking at data
func IsNeutral(p Predicate) bool {
	switch v := p.(type) {
	case nil:
		return true
	case True:
		return true
	case And:
		for _, t := range v.Terms {
			if !IsNeutral(t) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// AllOf returns the conjunction of terms, dropping neutral ones.
// With nothing left it returns True; a single term is returned as is.
func AllOf(terms ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(terms))
	for _, t := range terms {
		if IsNeutral(t) {
			continue
		}
		kept = append(kept, t)
	}

	switch len(kept) {
	case 0:
		return True{}
	case 1:
		return kept[0]
	default:
		return And{Terms: kept}
	}
}

// AnyOf returns the disjunction of terms
func AnyOf(terms ...Predicate) Predicate {
	for _, t := range terms {
		if IsNeutral(t) {
			return True{}
		}
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return Or{Terms: terms}
}
