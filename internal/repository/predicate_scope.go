package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"truebalance-be-svc/internal/filter"
)

// ErrUnsupportedPredicate is returned when a predicate cannot be translated to SQL
var ErrUnsupportedPredicate = errors.New("unsupported predicate")

var fieldColumns = map[filter.Field]string{
	filter.FieldBillName:                 "bills.name",
	filter.FieldBillExecutionDate:        "bills.execution_date",
	filter.FieldBillTotalAmount:          "bills.total_amount",
	filter.FieldBillNumberOfInstallments: "bills.number_of_installments",
	filter.FieldBillCategory:             "bills.category",
	filter.FieldInstallmentCreditCardID:  "installments.credit_card_id",
}

var relationSubqueries = map[filter.Relation]string{
	filter.RelationInstallments: "SELECT 1 FROM installments WHERE installments.bill_id = bills.id",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// sqlFragment is a WHERE fragment with its bind arguments
type sqlFragment struct {
	sql  string
	args []interface{}
}

// compilePredicate renders a predicate as a SQL boolean expression over the bills table
func compilePredicate(p filter.Predicate) (sqlFragment, error) {
	switch v := p.(type) {
	case nil, filter.True:
		return sqlFragment{sql: "1 = 1"}, nil

	case filter.Comparison:
		col, err := column(v.Field)
		if err != nil {
			return sqlFragment{}, err
		}
		switch v.Op {
		case filter.OpEqual, filter.OpGreaterOrEqual, filter.OpLessOrEqual:
		default:
			return sqlFragment{}, fmt.Errorf("%w: operator %q", ErrUnsupportedPredicate, v.Op)
		}
		return sqlFragment{sql: fmt.Sprintf("%s %s ?", col, v.Op), args: []interface{}{v.Value}}, nil

	case filter.Contains:
		col, err := column(v.Field)
		if err != nil {
			return sqlFragment{}, err
		}
		// sqlite LOWER folds ASCII only; postgres folds per collation
		pattern := "%" + likeEscaper.Replace(strings.ToLower(v.Value)) + "%"
		return sqlFragment{sql: fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col), args: []interface{}{pattern}}, nil

	case filter.EqualFold:
		col, err := column(v.Field)
		if err != nil {
			return sqlFragment{}, err
		}
		return sqlFragment{
			sql:  fmt.Sprintf("(%s IS NOT NULL AND LOWER(%s) = ?)", col, col),
			args: []interface{}{strings.ToLower(v.Value)},
		}, nil

	case filter.IsNull:
		col, err := column(v.Field)
		if err != nil {
			return sqlFragment{}, err
		}
		return sqlFragment{sql: col + " IS NULL"}, nil

	case filter.And:
		if len(v.Terms) == 0 {
			return sqlFragment{sql: "1 = 1"}, nil
		}
		return joinFragments(v.Terms, " AND ")

	case filter.Or:
		if len(v.Terms) == 0 {
			return sqlFragment{sql: "1 = 0"}, nil
		}
		return joinFragments(v.Terms, " OR ")

	case filter.Not:
		inner, err := compilePredicate(v.Term)
		if err != nil {
			return sqlFragment{}, err
		}
		return sqlFragment{sql: "NOT (" + inner.sql + ")", args: inner.args}, nil

	case filter.Exists:
		sub, ok := relationSubqueries[v.Relation]
		if !ok {
			return sqlFragment{}, fmt.Errorf("%w: relation %q", ErrUnsupportedPredicate, v.Relation)
		}
		if filter.IsNeutral(v.Where) {
			return sqlFragment{sql: "EXISTS (" + sub + ")"}, nil
		}
		inner, err := compilePredicate(v.Where)
		if err != nil {
			return sqlFragment{}, err
		}
		return sqlFragment{sql: "EXISTS (" + sub + " AND " + inner.sql + ")", args: inner.args}, nil

	default:
		return sqlFragment{}, fmt.Errorf("%w: %T", ErrUnsupportedPredicate, p)
	}
}

func joinFragments(terms []filter.Predicate, sep string) (sqlFragment, error) {
	parts := make([]string, 0, len(terms))
	var args []interface{}
	for _, t := range terms {
		f, err := compilePredicate(t)
		if err != nil {
			return sqlFragment{}, err
		}
		parts = append(parts, f.sql)
		args = append(args, f.args...)
	}
	return sqlFragment{sql: "(" + strings.Join(parts, sep) + ")", args: args}, nil
}

func column(f filter.Field) (string, error) {
	col, ok := fieldColumns[f]
	if !ok {
		return "", fmt.Errorf("%w: field %q", ErrUnsupportedPredicate, f)
	}
	return col, nil
}

// predicateScope returns a gorm scope restricting a bills query to rows matching p.
// A neutral predicate adds no WHERE clause.
func predicateScope(p filter.Predicate) (func(*gorm.DB) *gorm.DB, error) {
	if filter.IsNeutral(p) {
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	}

	frag, err := compilePredicate(p)
	if err != nil {
		return nil, err
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Where(frag.sql, frag.args...)
	}, nil
}

var sortColumns = map[filter.SortField]string{
	filter.SortByExecutionDate: "bills.execution_date",
	filter.SortByTotalAmount:   "bills.total_amount",
	filter.SortByName:          "bills.name",
	filter.SortByCreatedAt:     "bills.created_at",
}

// sortScope orders a bills query; bills.id breaks ties so pages are stable
func sortScope(opts filter.SortOptions) func(*gorm.DB) *gorm.DB {
	col, ok := sortColumns[opts.Field]
	if !ok {
		col = sortColumns[filter.SortByExecutionDate]
	}
	dir := "DESC"
	if opts.Direction == filter.SortAsc {
		dir = "ASC"
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Order(col + " " + dir).Order("bills.id " + dir)
	}
}
