package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"truebalance-be-svc/internal/filter"
	"truebalance-be-svc/internal/models"
	"truebalance-be-svc/pkg/logger"
)

// --- Mock implementations ---

type mockBillRepo struct {
	bills      []*models.Bill
	total      int64
	bill       *models.Bill
	withCard   map[uint]bool
	categories []string
	err        error
	cardErr    error
	createErr  error
	deleteErr  error

	gotPredicate filter.Predicate
	gotSort      filter.SortOptions
	gotPage      int
	gotLimit     int
	created      *models.Bill
}

func (m *mockBillRepo) SearchBills(p filter.Predicate, sort filter.SortOptions, page, limit int) ([]*models.Bill, int64, error) {
	m.gotPredicate, m.gotSort, m.gotPage, m.gotLimit = p, sort, page, limit
	return m.bills, m.total, m.err
}

func (m *mockBillRepo) GetBillByID(_ uint) (*models.Bill, error) {
	return m.bill, m.err
}

func (m *mockBillRepo) CreateBill(bill *models.Bill) error {
	if m.createErr != nil {
		return m.createErr
	}
	bill.ID = 42
	m.created = bill
	return nil
}

func (m *mockBillRepo) DeleteBill(_ uint) error { return m.deleteErr }

func (m *mockBillRepo) GetCreditCardBillIDs(_ []uint) (map[uint]bool, error) {
	return m.withCard, m.cardErr
}

func (m *mockBillRepo) ListCategories() ([]string, error) { return m.categories, m.err }

func newTestService(repo *mockBillRepo) BillService {
	log := logger.NewLogger("error", "json")
	log.SetOutput(io.Discard)
	return NewBillService(repo, log)
}

func uintPtr(u uint) *uint { return &u }

func TestSearchBills_DefaultsAndFlags(t *testing.T) {
	repo := &mockBillRepo{
		bills: []*models.Bill{
			{ID: 1, Name: "Market", TotalAmount: decimal.NewFromInt(10)},
			{ID: 2, Name: "Rent", TotalAmount: decimal.NewFromInt(1000)},
		},
		total:    2,
		withCard: map[uint]bool{1: true},
	}
	svc := newTestService(repo)

	got, total, err := svc.SearchBills(filter.BillCriteria{}, filter.DefaultSortOptions(), 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.True(t, got[0].HasCreditCard)
	assert.False(t, got[1].HasCreditCard)

	assert.Equal(t, filter.True{}, repo.gotPredicate)
	assert.Equal(t, 1, repo.gotPage)
	assert.Equal(t, DefaultPageSize, repo.gotLimit)
}

func TestSearchBills_CapsLimit(t *testing.T) {
	repo := &mockBillRepo{}
	svc := newTestService(repo)

	_, _, err := svc.SearchBills(filter.BillCriteria{}, filter.DefaultSortOptions(), 3, 1000)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.gotPage)
	assert.Equal(t, MaxPageSize, repo.gotLimit)
}

func TestSearchBills_PassesCriteriaPredicate(t *testing.T) {
	repo := &mockBillRepo{}
	svc := newTestService(repo)

	criteria := filter.BillCriteria{CreditCardID: uintPtr(5), Category: filter.Uncategorized()}
	_, _, err := svc.SearchBills(criteria, filter.DefaultSortOptions(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, criteria.Predicate(), repo.gotPredicate)
}

func TestSearchBills_InvalidRanges(t *testing.T) {
	svc := newTestService(&mockBillRepo{})

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := svc.SearchBills(filter.BillCriteria{StartDate: &start, EndDate: &end}, filter.DefaultSortOptions(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)

	min, max := decimal.NewFromInt(10), decimal.NewFromInt(5)
	_, _, err = svc.SearchBills(filter.BillCriteria{MinAmount: &min, MaxAmount: &max}, filter.DefaultSortOptions(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSearchBills_RepositoryError(t *testing.T) {
	svc := newTestService(&mockBillRepo{err: errors.New("db down")})

	_, _, err := svc.SearchBills(filter.BillCriteria{}, filter.DefaultSortOptions(), 1, 10)
	assert.EqualError(t, err, "db down")
}

func TestGetBill(t *testing.T) {
	card := uint(3)
	repo := &mockBillRepo{bill: &models.Bill{
		ID:   7,
		Name: "TV",
		Installments: []models.Installment{
			{ID: 1, InstallmentNumber: 1},
			{ID: 2, InstallmentNumber: 2, CreditCardID: &card},
		},
	}}
	svc := newTestService(repo)

	got, err := svc.GetBill(7)
	require.NoError(t, err)
	assert.Equal(t, "TV", got.Name)
	assert.True(t, got.HasCreditCard)
	assert.Len(t, got.Installments, 2)
}

func TestGetBill_NotFound(t *testing.T) {
	svc := newTestService(&mockBillRepo{err: gorm.ErrRecordNotFound})

	_, err := svc.GetBill(7)
	assert.ErrorIs(t, err, ErrBillNotFound)

	_, err = svc.GetBill(0)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestCreateBill_SplitsInstallments(t *testing.T) {
	repo := &mockBillRepo{}
	svc := newTestService(repo)

	exec := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	got, err := svc.CreateBill(&CreateBillRequest{
		Name:                 "  Laptop ",
		ExecutionDate:        exec,
		TotalAmount:          decimal.RequireFromString("100.00"),
		NumberOfInstallments: 3,
		CreditCardID:         uintPtr(5),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 42, got.ID)
	assert.Equal(t, "Laptop", got.Name)
	assert.True(t, got.HasCreditCard)
	require.Len(t, got.Installments, 3)
	assert.Equal(t, "33.34", got.Installments[0].Amount.StringFixed(2))
	assert.Equal(t, "33.33", got.Installments[1].Amount.StringFixed(2))
	assert.Equal(t, exec.AddDate(0, 2, 0), got.Installments[2].DueDate)
	require.NotNil(t, repo.created)
	assert.Equal(t, 3, repo.created.NumberOfInstallments)
}

func TestCreateBill_Validation(t *testing.T) {
	svc := newTestService(&mockBillRepo{})
	exec := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	reqs := map[string]*CreateBillRequest{
		"nil":          nil,
		"blank name":   {Name: " ", ExecutionDate: exec, TotalAmount: decimal.NewFromInt(1), NumberOfInstallments: 1},
		"zero amount":  {Name: "x", ExecutionDate: exec, TotalAmount: decimal.Zero, NumberOfInstallments: 1},
		"no parts":     {Name: "x", ExecutionDate: exec, TotalAmount: decimal.NewFromInt(1), NumberOfInstallments: 0},
		"missing date": {Name: "x", TotalAmount: decimal.NewFromInt(1), NumberOfInstallments: 1},
	}
	for name, req := range reqs {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateBill(req)
			assert.ErrorIs(t, err, ErrInvalidBill)
		})
	}
}

func TestDeleteBill(t *testing.T) {
	assert.NoError(t, newTestService(&mockBillRepo{}).DeleteBill(1))
	assert.ErrorIs(t, newTestService(&mockBillRepo{deleteErr: gorm.ErrRecordNotFound}).DeleteBill(1), ErrBillNotFound)
}

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		total string
		n     int
		want  []string
	}{
		{"100.00", 3, []string{"33.34", "33.33", "33.33"}},
		{"10", 4, []string{"2.50", "2.50", "2.50", "2.50"}},
		{"0.05", 2, []string{"0.03", "0.02"}},
		{"250.90", 1, []string{"250.90"}},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			parts := SplitAmount(decimal.RequireFromString(tt.total), tt.n)
			require.Len(t, parts, tt.n)

			sum := decimal.Zero
			for i, p := range parts {
				assert.Equal(t, tt.want[i], p.StringFixed(2))
				sum = sum.Add(p)
			}
			assert.True(t, sum.Equal(decimal.RequireFromString(tt.total)))
		})
	}

	assert.Nil(t, SplitAmount(decimal.NewFromInt(1), 0))
}
